package brine

import "github.com/fxamacker/cbor/v2"

// Core deterministic encoding (RFC 8949 §4.2.1) keeps map keys sorted,
// so equal values always encode to equal bytes.
var cborEnc = must(cbor.CoreDetEncOptions().EncMode())

func cborEncodeValue(v any) ([]byte, error) {
	return cborEnc.Marshal(v)
}

func cborDecodeValue(data []byte, ptr any) error {
	return cbor.Unmarshal(data, ptr)
}

func cborEncodeDatabase(values map[string][]byte, lists map[string][][]byte) ([]byte, error) {
	return cborEnc.Marshal(binDatabaseDoc{Values: values, Lists: lists})
}

func cborDecodeDatabase(data []byte) (map[string][]byte, map[string][][]byte, error) {
	var doc binDatabaseDoc
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, nil, dataErrf(data, err, "invalid CBOR database")
	}
	return doc.Values, doc.Lists, nil
}
