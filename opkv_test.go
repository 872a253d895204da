package brine

import (
	"slices"
	"testing"
)

type Coord struct {
	X int `json:"x" yaml:"x" msgpack:"x" cbor:"x"`
	Y int `json:"y" yaml:"y" msgpack:"y" cbor:"y"`
}

func TestSetGet(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			db := setup(t, f, AutoDump)
			ensure(t, db.Set("num", 100))
			ensure(t, db.Set("float", 1.25))
			ensure(t, db.Set("string", "my string"))
			ensure(t, db.Set("list_of_numbers", []int{1, 2, 3}))
			ensure(t, db.Set("coord", Coord{X: 7, Y: 9}))

			deepEqual(t, p(Get[int](db, "num")), p(100, true))
			deepEqual(t, p(Get[float64](db, "float")), p(1.25, true))
			deepEqual(t, p(Get[string](db, "string")), p("my string", true))
			deepEqual(t, p(Get[[]int](db, "list_of_numbers")), p([]int{1, 2, 3}, true))
			deepEqual(t, p(Get[Coord](db, "coord")), p(Coord{X: 7, Y: 9}, true))
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	db := setup(t, JSON, DumpUponRequest)
	istrue(t, missing(Get[int](db, "nope")))
}

func TestGetWrongType(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			db := setup(t, f, DumpUponRequest)
			ensure(t, db.Set("key", 100))
			istrue(t, missing(Get[string](db, "key")))
			deepEqual(t, p(Get[int](db, "key")), p(100, true))
		})
	}
}

func TestOverwriteAcrossTypes(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			db := setup(t, f, AutoDump)
			ensure(t, db.Set("key", 100))
			ensure(t, db.Set("key", "override"))
			istrue(t, missing(Get[int](db, "key")))
			deepEqual(t, p(Get[string](db, "key")), p("override", true))
		})
	}
}

func TestSetSpecialStrings(t *testing.T) {
	specials := []string{
		"",
		"\"doublequotes\"",
		"'singlequotes'",
		"עברית",
		"😻",
		"\\backslashes\\",
		"Here's a \t tab and a \n newline",
		"multi\nline\nstring",
	}
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			path := testPath(t, f)
			db := New(path, Options{Format: f, DumpPolicy: AutoDump})
			for i, s := range specials {
				ensure(t, db.Set(string(rune('a'+i)), s))
			}

			db2 := mustLoad(t, path, Options{Format: f})
			for i, s := range specials {
				deepEqual(t, p(Get[string](db2, string(rune('a'+i)))), p(s, true))
			}
		})
	}
}

func TestGetRaw(t *testing.T) {
	db := setup(t, JSON, DumpUponRequest)
	ensure(t, db.Set("key", 100))
	data, ok := db.GetRaw("key")
	istrue(t, ok)
	deepEqual(t, string(data), "100")
	_, ok = db.GetRaw("nope")
	isfalse(t, ok)
}

func TestExists(t *testing.T) {
	db := setup(t, JSON, DumpUponRequest)
	ensure(t, db.Set("scalar", 1))
	_, err := db.ListCreate("list")
	ensure(t, err)

	istrue(t, db.Exists("scalar"))
	istrue(t, db.Exists("list"))
	isfalse(t, db.Exists("nope"))
}

func TestRemove(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			db := setup(t, f, AutoDump)
			ensure(t, db.Set("scalar", 1))
			_, err := db.ListCreate("list")
			ensure(t, err)

			removed, err := db.Remove("scalar")
			ensure(t, err)
			istrue(t, removed)
			isfalse(t, db.Exists("scalar"))

			removed, err = db.Remove("list")
			ensure(t, err)
			istrue(t, removed)
			isfalse(t, db.ListExists("list"))

			removed, err = db.Remove("nope")
			ensure(t, err)
			isfalse(t, removed)
		})
	}
}

func TestKeysAndTotalKeys(t *testing.T) {
	db := setup(t, JSON, DumpUponRequest)
	ensure(t, db.Set("a", 1))
	ensure(t, db.Set("b", 2))
	_, err := db.ListCreate("L")
	ensure(t, err)

	keys := db.Keys()
	slices.Sort(keys)
	deepEqual(t, keys, []string{"L", "a", "b"})
	deepEqual(t, db.TotalKeys(), 3)

	_, err = db.Remove("a")
	ensure(t, err)
	deepEqual(t, db.TotalKeys(), 2)
}

func TestNamespacePartition(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			db := setup(t, f, AutoDump)

			// a list created over a scalar evicts the scalar
			ensure(t, db.Set("k", 1))
			_, err := db.ListCreate("k")
			ensure(t, err)
			istrue(t, db.Exists("k"))
			istrue(t, missing(Get[int](db, "k")))
			istrue(t, db.ListExists("k"))

			// and a scalar set over a list evicts the list
			ensure(t, db.Set("k", 2))
			istrue(t, db.Exists("k"))
			isfalse(t, db.ListExists("k"))
			deepEqual(t, db.ListLen("k"), 0)
			deepEqual(t, p(Get[int](db, "k")), p(2, true))
			deepEqual(t, db.TotalKeys(), 1)
		})
	}
}
