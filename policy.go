package brine

import (
	"fmt"
	"time"
)

// DumpPolicy determines when in-memory changes are written to the file.
// It is fixed at construction time; a caller wanting a different policy
// constructs or loads a new DB.
type DumpPolicy struct {
	kind     dumpPolicyKind
	interval time.Duration
}

type dumpPolicyKind int

const (
	dumpNever dumpPolicyKind = iota
	dumpAuto
	dumpUponRequest
	dumpPeriodic
)

var (
	// NeverDump never writes the file, not even from Dump. The database
	// is effectively read-only.
	NeverDump = DumpPolicy{kind: dumpNever}

	// AutoDump writes the file after every change.
	AutoDump = DumpPolicy{kind: dumpAuto}

	// DumpUponRequest writes the file only when Dump is called. Unlike
	// NeverDump, it also skips the final dump in Close: not having called
	// Dump is the caller's choice to discard unsaved changes.
	DumpUponRequest = DumpPolicy{kind: dumpUponRequest}
)

// PeriodicDump writes the file after a change only if at least min has
// elapsed since the last dump; changes arriving sooner stay in memory
// until a later change or an explicit Dump.
func PeriodicDump(min time.Duration) DumpPolicy {
	return DumpPolicy{kind: dumpPeriodic, interval: min}
}

func (p DumpPolicy) String() string {
	switch p.kind {
	case dumpNever:
		return "never"
	case dumpAuto:
		return "auto"
	case dumpUponRequest:
		return "upon-request"
	case dumpPeriodic:
		return fmt.Sprintf("periodic(%v)", p.interval)
	default:
		panic("unsupported dump policy")
	}
}
