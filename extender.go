package brine

// ListExtender is returned by the list-creating and list-appending
// operations and allows further appends to the same list without
// repeating its name. It carries no state beyond the DB and the name;
// every call delegates to the DB, so dump failures roll back and surface
// exactly as they do on the DB methods.
type ListExtender struct {
	db   *DB
	name string
}

func (e *ListExtender) Name() string {
	return e.name
}

// Add appends a single value to the list.
func (e *ListExtender) Add(value any) (*ListExtender, error) {
	return e.db.ListAdd(e.name, value)
}

// Extend appends values to the list in order.
func (e *ListExtender) Extend(values ...any) (*ListExtender, error) {
	return e.db.ListExtend(e.name, values...)
}
