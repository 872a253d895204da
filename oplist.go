package brine

import (
	"bytes"
	"slices"
)

// ListCreate installs an empty list under name, removing a scalar value
// of the same name and truncating any existing list with that name.
func (db *DB) ListCreate(name string) (*ListExtender, error) {
	prevValue, hadValue := db.values[name]
	if hadValue {
		delete(db.values, name)
	}
	prevList, hadList := db.lists[name]
	db.lists[name] = [][]byte{}

	if err := db.autoDump(); err != nil {
		if hadValue {
			db.values[name] = prevValue
		}
		if hadList {
			db.lists[name] = prevList
		} else {
			delete(db.lists, name)
		}
		return nil, err
	}
	return &ListExtender{db: db, name: name}, nil
}

// ListExists reports whether name is a known list.
func (db *DB) ListExists(name string) bool {
	_, ok := db.lists[name]
	return ok
}

// ListAdd appends a single value to the list. Returns (nil, nil) if the
// list does not exist, letting callers probe existence via the result.
func (db *DB) ListAdd(name string, value any) (*ListExtender, error) {
	return db.ListExtend(name, value)
}

// ListExtend appends values to the list in order. Returns (nil, nil) if
// the list does not exist. If the triggered dump fails, the list is
// truncated back to its previous length and the error returned.
func (db *DB) ListExtend(name string, values ...any) (*ListExtender, error) {
	list, ok := db.lists[name]
	if !ok {
		return nil, nil
	}

	encoded := make([][]byte, 0, len(values))
	for _, v := range values {
		data, err := db.format.EncodeValue(v)
		if err != nil {
			return nil, serErrf(err, "encoding element for list %q", name)
		}
		encoded = append(encoded, data)
	}

	origLen := len(list)
	db.lists[name] = append(list, encoded...)

	if err := db.autoDump(); err != nil {
		db.lists[name] = db.lists[name][:origLen]
		return nil, err
	}
	return &ListExtender{db: db, name: name}, nil
}

// ListGet decodes the element at pos as V. Returns false if the list is
// absent, pos is out of bounds, or the bytes do not decode as V.
func ListGet[V any](db *DB, name string, pos int) (V, bool) {
	var zero V
	list, ok := db.lists[name]
	if !ok || pos < 0 || pos >= len(list) {
		return zero, false
	}
	var v V
	if err := db.format.DecodeValue(list[pos], &v); err != nil {
		return zero, false
	}
	return v, true
}

// ListLen returns the length of the list, or 0 if it does not exist.
func (db *DB) ListLen(name string) int {
	return len(db.lists[name])
}

// ListDelete removes the whole list and returns its previous length,
// or 0 if it did not exist.
func (db *DB) ListDelete(name string) (int, error) {
	list, ok := db.lists[name]
	if !ok {
		return 0, nil
	}
	n := len(list)
	delete(db.lists, name)
	if err := db.autoDump(); err != nil {
		db.lists[name] = list
		return 0, err
	}
	return n, nil
}

// ListPop removes the element at pos and returns it decoded as V.
// Returns false if the list is absent, pos is out of bounds, the dump
// fails (the element is reinserted at the same position), or the bytes
// do not decode as V (the element stays removed).
func ListPop[V any](db *DB, name string, pos int) (V, bool) {
	var zero V
	list, ok := db.lists[name]
	if !ok || pos < 0 || pos >= len(list) {
		return zero, false
	}

	removed := list[pos]
	db.lists[name] = slices.Concat(list[:pos], list[pos+1:])

	if err := db.autoDump(); err != nil {
		db.lists[name] = list
		return zero, false
	}

	var v V
	if err := db.format.DecodeValue(removed, &v); err != nil {
		return zero, false
	}
	return v, true
}

// ListRemoveValue removes the first element whose encoded bytes equal
// the encoding of value, and reports whether one was found. All backends
// encode deterministically, so equal values have equal encodings.
func (db *DB) ListRemoveValue(name string, value any) (bool, error) {
	list, ok := db.lists[name]
	if !ok {
		return false, nil
	}

	target, err := db.format.EncodeValue(value)
	if err != nil {
		return false, serErrf(err, "encoding value to remove from list %q", name)
	}

	pos := slices.IndexFunc(list, func(el []byte) bool {
		return bytes.Equal(el, target)
	})
	if pos < 0 {
		return false, nil
	}

	db.lists[name] = slices.Concat(list[:pos], list[pos+1:])
	if err := db.autoDump(); err != nil {
		db.lists[name] = list
		return false, err
	}
	return true, nil
}
