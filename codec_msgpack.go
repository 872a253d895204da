package brine

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Map keys are sorted so that encoding the same value always produces the
// same bytes regardless of map iteration order.

func msgpackEncodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	err := enc.Encode(v)
	msgpack.PutEncoder(enc)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func msgpackDecodeValue(data []byte, ptr any) error {
	var r bytes.Reader
	r.Reset(data)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	err := dec.Decode(ptr)
	msgpack.PutDecoder(dec)
	return err
}

func msgpackEncodeDatabase(values map[string][]byte, lists map[string][][]byte) ([]byte, error) {
	return msgpackEncodeValue(binDatabaseDoc{Values: values, Lists: lists})
}

func msgpackDecodeDatabase(data []byte) (map[string][]byte, map[string][][]byte, error) {
	var doc binDatabaseDoc
	if err := msgpackDecodeValue(data, &doc); err != nil {
		return nil, nil, dataErrf(data, err, "invalid MsgPack database")
	}
	return doc.Values, doc.Lists, nil
}
