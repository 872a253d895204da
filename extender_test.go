package brine

import "testing"

func TestExtenderChaining(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			db := setup(t, f, AutoDump)
			ext, err := db.ListCreate("list1")
			ensure(t, err)
			deepEqual(t, ext.Name(), "list1")

			ext, err = ext.Add(100)
			ensure(t, err)
			ext, err = ext.Extend("a", "b")
			ensure(t, err)
			_, err = ext.Add(3.5)
			ensure(t, err)

			deepEqual(t, db.ListLen("list1"), 4)
			deepEqual(t, p(ListGet[int](db, "list1", 0)), p(100, true))
			deepEqual(t, p(ListGet[string](db, "list1", 1)), p("a", true))
			deepEqual(t, p(ListGet[string](db, "list1", 2)), p("b", true))
			deepEqual(t, p(ListGet[float64](db, "list1", 3)), p(3.5, true))
		})
	}
}

func TestExtenderSurfacesDumpFailure(t *testing.T) {
	db := New(unwritablePath(t), Options{Format: JSON, DumpPolicy: DumpUponRequest})
	ext, err := db.ListCreate("list1")
	ensure(t, err)

	db.policy = AutoDump
	_, err = ext.Add(1)
	errKind(t, err, IOError)
	deepEqual(t, db.ListLen("list1"), 0)
}

func TestExtenderFromListAdd(t *testing.T) {
	db := setup(t, JSON, DumpUponRequest)
	_, err := db.ListCreate("list1")
	ensure(t, err)

	ext, err := db.ListAdd("list1", 1)
	ensure(t, err)
	_, err = ext.Add(2)
	ensure(t, err)
	deepEqual(t, db.ListLen("list1"), 2)
}
