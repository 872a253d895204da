package brine

// Cursor iterates over the scalar entries of a DB in map order. It
// snapshots the entries at creation; mutating the DB mid-iteration does
// not affect an existing cursor, but a fresh cursor must be requested to
// observe the changes.
type Cursor struct {
	format Format
	keys   []string
	data   [][]byte
	pos    int
}

// Items returns a cursor over all scalar entries. Order is unspecified.
func (db *DB) Items() *Cursor {
	c := &Cursor{
		format: db.format,
		keys:   make([]string, 0, len(db.values)),
		data:   make([][]byte, 0, len(db.values)),
		pos:    -1,
	}
	for k, v := range db.values {
		c.keys = append(c.keys, k)
		c.data = append(c.data, v)
	}
	return c
}

// Next advances to the next entry, returning false when exhausted.
func (c *Cursor) Next() bool {
	c.pos++
	return c.pos < len(c.keys)
}

// Item returns the current entry. Only valid after Next returned true.
func (c *Cursor) Item() Item {
	return Item{key: c.keys[c.pos], data: c.data[c.pos], format: c.format}
}

// Item is one scalar entry yielded by a Cursor. Its value is decoded
// lazily, on request, so iteration never fails; each item's decode can
// fail independently.
type Item struct {
	key    string
	data   []byte
	format Format
}

func (it Item) Key() string {
	return it.key
}

// Raw returns the entry's encoded bytes.
func (it Item) Raw() []byte {
	return it.data
}

// ItemValue decodes the item's value as V, returning false if the bytes
// do not decode as V.
func ItemValue[V any](it Item) (V, bool) {
	var v V
	if err := it.format.DecodeValue(it.data, &v); err != nil {
		var zero V
		return zero, false
	}
	return v, true
}

// ListCursor iterates over one list's elements in list order.
type ListCursor struct {
	format Format
	items  [][]byte
	pos    int
}

// ListItems returns a cursor over the named list. An unknown name yields
// a valid empty cursor, consistent with the soft not-found convention of
// the rest of the list API.
func (db *DB) ListItems(name string) *ListCursor {
	return &ListCursor{format: db.format, items: db.lists[name], pos: -1}
}

func (c *ListCursor) Next() bool {
	c.pos++
	return c.pos < len(c.items)
}

// Item returns the current element. Only valid after Next returned true.
func (c *ListCursor) Item() ListItem {
	return ListItem{data: c.items[c.pos], format: c.format}
}

// ListItem is one list element yielded by a ListCursor.
type ListItem struct {
	data   []byte
	format Format
}

func (it ListItem) Raw() []byte {
	return it.data
}

// ListItemValue decodes the element as V, returning false if the bytes
// do not decode as V.
func ListItemValue[V any](it ListItem) (V, bool) {
	var v V
	if err := it.format.DecodeValue(it.data, &v); err != nil {
		var zero V
		return zero, false
	}
	return v, true
}
