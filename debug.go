package brine

import (
	"fmt"
	"strings"
)

type DumpFlags uint64

const (
	DumpHeaders = DumpFlags(1 << iota)
	DumpValues
	DumpLists
	DumpRaw

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)
)

const (
	dumpSep1 = "================================================================================"
	dumpSep2 = "------------------------------------------------------------"
)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// DumpContents renders the store's state as a human-readable string for
// diagnostics. Keys are sorted for stable output. Values are shown
// decoded where possible; DumpRaw switches to hex.
func (db *DB) DumpContents(f DumpFlags) string {
	var buf strings.Builder

	if f.Contains(DumpHeaders) {
		fmt.Fprintln(&buf, dumpSep1)
		fmt.Fprintf(&buf, "%s [%v, %v] (%d values, %d lists)\n", db.path, db.format, db.policy, len(db.values), len(db.lists))
	}

	if f.Contains(DumpValues) {
		fmt.Fprintln(&buf, dumpSep2)
		for _, key := range sortedKeys(db.values) {
			fmt.Fprintf(&buf, "%s = %s\n", key, db.loggableValue(db.values[key], f))
		}
	}

	if f.Contains(DumpLists) {
		for _, name := range sortedKeys(db.lists) {
			list := db.lists[name]
			fmt.Fprintln(&buf, dumpSep2)
			fmt.Fprintf(&buf, "%s (%d elements)\n", name, len(list))
			for i, el := range list {
				fmt.Fprintf(&buf, "%s.%d = %s\n", name, i, db.loggableValue(el, f))
			}
		}
	}

	return buf.String()
}

func (db *DB) loggableValue(data []byte, f DumpFlags) string {
	if f.Contains(DumpRaw) {
		return fmt.Sprintf("(%d) %x", len(data), data)
	}
	var v any
	if err := db.format.DecodeValue(data, &v); err != nil {
		return fmt.Sprintf("** ERROR: %v", err)
	}
	return fmt.Sprintf("%v", v)
}
