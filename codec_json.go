package brine

import "encoding/json"

// encoding/json sorts map keys, so value encodings are deterministic,
// which ListRemoveValue's byte-equality matching relies on.

func jsonEncodeValue(v any) ([]byte, error) {
	return json.Marshal(v)
}

func jsonDecodeValue(data []byte, ptr any) error {
	return json.Unmarshal(data, ptr)
}

func jsonEncodeDatabase(values map[string][]byte, lists map[string][][]byte) ([]byte, error) {
	return json.Marshal(makeTextDoc(values, lists))
}

func jsonDecodeDatabase(data []byte) (map[string][]byte, map[string][][]byte, error) {
	var doc textDatabaseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, dataErrf(data, err, "invalid JSON database")
	}
	if err := doc.validate(data); err != nil {
		return nil, nil, err
	}
	values, lists := doc.maps()
	return values, lists, nil
}
