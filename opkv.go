package brine

// Set encodes value and stores it under key, overwriting any previous
// value and removing a list of the same name if one exists. If the
// triggered dump fails, the change is rolled back and the error returned.
func (db *DB) Set(key string, value any) error {
	data, err := db.format.EncodeValue(value)
	if err != nil {
		return serErrf(err, "encoding value for key %q", key)
	}

	prevList, hadList := db.lists[key]
	if hadList {
		delete(db.lists, key)
	}
	prev, hadPrev := db.values[key]
	db.values[key] = data

	if err := db.autoDump(); err != nil {
		if hadPrev {
			db.values[key] = prev
		} else {
			delete(db.values, key)
		}
		if hadList {
			db.lists[key] = prevList
		}
		return err
	}
	return nil
}

// Get decodes the value stored under key as V. Returns false if the key
// is absent or its bytes do not decode as V; asking for the wrong type
// is an expected, silent miss.
func Get[V any](db *DB, key string) (V, bool) {
	var v V
	data, ok := db.values[key]
	if !ok {
		return v, false
	}
	if err := db.format.DecodeValue(data, &v); err != nil {
		var zero V
		return zero, false
	}
	return v, true
}

// GetRaw returns the encoded bytes stored under key without decoding.
func (db *DB) GetRaw(key string) ([]byte, bool) {
	data, ok := db.values[key]
	return data, ok
}

// Exists reports whether key names a scalar value or a list.
func (db *DB) Exists(key string) bool {
	if _, ok := db.values[key]; ok {
		return true
	}
	_, ok := db.lists[key]
	return ok
}

// Remove deletes key from whichever map holds it and reports whether
// anything was removed.
func (db *DB) Remove(key string) (bool, error) {
	var removed bool

	if prev, ok := db.values[key]; ok {
		delete(db.values, key)
		if err := db.autoDump(); err != nil {
			db.values[key] = prev
			return false, err
		}
		removed = true
	}

	if prevList, ok := db.lists[key]; ok {
		delete(db.lists, key)
		if err := db.autoDump(); err != nil {
			db.lists[key] = prevList
			return false, err
		}
		removed = true
	}

	return removed, nil
}

// Keys returns all scalar keys and list names, in no particular order.
func (db *DB) Keys() []string {
	keys := make([]string, 0, len(db.values)+len(db.lists))
	for k := range db.values {
		keys = append(keys, k)
	}
	for k := range db.lists {
		keys = append(keys, k)
	}
	return keys
}

// TotalKeys returns the number of scalar keys plus list names.
func (db *DB) TotalKeys() int {
	return len(db.values) + len(db.lists)
}
