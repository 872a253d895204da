package brine

import (
	"fmt"
)

// Format identifies a serialization backend. The store's logic never
// branches on the format; everything goes through the dispatch methods
// below. Adding a format means adding one codec file and one arm to each
// switch here.
type Format int

const (
	JSON Format = iota
	Bin
	YAML
	CBOR
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Bin:
		return "bin"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat turns a format name (as produced by String) back into a
// Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "json":
		return JSON, true
	case "bin":
		return Bin, true
	case "yaml":
		return YAML, true
	case "cbor":
		return CBOR, true
	default:
		return 0, false
	}
}

// DefaultFileExt returns the conventional file extension for databases
// written in this format, including the leading dot.
func (f Format) DefaultFileExt() string {
	switch f {
	case JSON:
		return ".json"
	case Bin:
		return ".bin"
	case YAML:
		return ".yaml"
	case CBOR:
		return ".cbor"
	default:
		panic("unsupported format")
	}
}

// textual reports whether the format's output is UTF-8 text that cannot
// embed arbitrary bytes. Textual formats carry stored blobs as strings
// inside the database document.
func (f Format) textual() bool {
	return f == JSON || f == YAML
}

// EncodeValue serializes a single value.
func (f Format) EncodeValue(v any) ([]byte, error) {
	switch f {
	case JSON:
		return jsonEncodeValue(v)
	case Bin:
		return msgpackEncodeValue(v)
	case YAML:
		return yamlEncodeValue(v)
	case CBOR:
		return cborEncodeValue(v)
	default:
		panic("unsupported format")
	}
}

// DecodeValue deserializes a single value into ptr, which must be a
// pointer. A failure means the bytes do not represent a value of ptr's
// type under this format; callers normally absorb it into an absent
// result rather than propagating it.
func (f Format) DecodeValue(data []byte, ptr any) error {
	var err error
	switch f {
	case JSON:
		err = jsonDecodeValue(data, ptr)
	case Bin:
		err = msgpackDecodeValue(data, ptr)
	case YAML:
		err = yamlDecodeValue(data, ptr)
	case CBOR:
		err = cborDecodeValue(data, ptr)
	default:
		panic("unsupported format")
	}
	if err != nil {
		return dataErrf(data, err, "cannot decode %v into %T", f, ptr)
	}
	return nil
}

// EncodeDatabase serializes the whole map pair as one document.
func (f Format) EncodeDatabase(values map[string][]byte, lists map[string][][]byte) ([]byte, error) {
	switch f {
	case JSON:
		return jsonEncodeDatabase(values, lists)
	case Bin:
		return msgpackEncodeDatabase(values, lists)
	case YAML:
		return yamlEncodeDatabase(values, lists)
	case CBOR:
		return cborEncodeDatabase(values, lists)
	default:
		panic("unsupported format")
	}
}

// DecodeDatabase is the inverse of EncodeDatabase. It fails if the bytes
// are not a database document in this format, e.g. when reading a file
// written by a different format.
func (f Format) DecodeDatabase(data []byte) (map[string][]byte, map[string][][]byte, error) {
	switch f {
	case JSON:
		return jsonDecodeDatabase(data)
	case Bin:
		return msgpackDecodeDatabase(data)
	case YAML:
		return yamlDecodeDatabase(data)
	case CBOR:
		return cborDecodeDatabase(data)
	default:
		panic("unsupported format")
	}
}

// binDatabaseDoc is the document shape used by the binary formats.
type binDatabaseDoc struct {
	Values map[string][]byte   `msgpack:"values" cbor:"values"`
	Lists  map[string][][]byte `msgpack:"lists" cbor:"lists"`
}

// textDatabaseDoc is the document shape used by the textual formats.
// Blobs produced by a textual format are themselves valid UTF-8, so the
// string re-representation is lossless.
type textDatabaseDoc struct {
	Values map[string]string   `json:"values" yaml:"values"`
	Lists  map[string][]string `json:"lists" yaml:"lists"`
}

func makeTextDoc(values map[string][]byte, lists map[string][][]byte) textDatabaseDoc {
	doc := textDatabaseDoc{
		Values: make(map[string]string, len(values)),
		Lists:  make(map[string][]string, len(lists)),
	}
	for k, v := range values {
		doc.Values[k] = string(v)
	}
	for name, list := range lists {
		items := make([]string, len(list))
		for i, el := range list {
			items[i] = string(el)
		}
		doc.Lists[name] = items
	}
	return doc
}

func (doc textDatabaseDoc) maps() (map[string][]byte, map[string][][]byte) {
	values := make(map[string][]byte, len(doc.Values))
	lists := make(map[string][][]byte, len(doc.Lists))
	for k, v := range doc.Values {
		values[k] = []byte(v)
	}
	for name, items := range doc.Lists {
		list := make([][]byte, len(items))
		for i, s := range items {
			list[i] = []byte(s)
		}
		lists[name] = list
	}
	return values, lists
}

// empty decodes (such as a zero-length YAML stream) succeed vacuously in
// some backends; a document with neither map is not a database.
func (doc textDatabaseDoc) validate(data []byte) error {
	if doc.Values == nil && doc.Lists == nil {
		return dataErrf(data, nil, "not a database document")
	}
	return nil
}
