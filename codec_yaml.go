package brine

import "gopkg.in/yaml.v3"

// yaml.v3 sorts map keys on encode, keeping value encodings deterministic.

func yamlEncodeValue(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func yamlDecodeValue(data []byte, ptr any) error {
	return yaml.Unmarshal(data, ptr)
}

func yamlEncodeDatabase(values map[string][]byte, lists map[string][][]byte) ([]byte, error) {
	return yaml.Marshal(makeTextDoc(values, lists))
}

func yamlDecodeDatabase(data []byte) (map[string][]byte, map[string][][]byte, error) {
	var doc textDatabaseDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, dataErrf(data, err, "invalid YAML database")
	}
	// yaml.Unmarshal accepts an empty stream without touching doc.
	if err := doc.validate(data); err != nil {
		return nil, nil, err
	}
	values, lists := doc.maps()
	return values, lists, nil
}
