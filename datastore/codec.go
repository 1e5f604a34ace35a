package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// EncodeDocument renders doc as compact JSON with sorted keys.
func EncodeDocument(doc storagemodels.Document) ([]byte, error) {
	if doc == nil {
		doc = storagemodels.Document{}
	}
	return json.Marshal(doc)
}

// DecodeDocument parses a JSON document. Anything other than an object of
// objects is a ParseError; source only names the input in errors.
//
// Numbers without a fraction or exponent that fit in 64 bits decode as
// int64, all others as float64, so large integers survive a round trip.
func DecodeDocument(source string, b []byte) (storagemodels.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.NewParseError(source, "document", nil, err)
	}
	if raw == nil {
		return nil, errors.NewParseError(source, "document", "null", nil)
	}

	doc := make(storagemodels.Document, len(raw))
	for key, entry := range raw {
		v, err := DecodeValue(entry)
		if err != nil {
			return nil, errors.NewParseError(key, "record", nil, err)
		}
		fields, ok := v.(map[string]interface{})
		if !ok {
			return nil, errors.NewParseError(key, "record", string(entry), nil)
		}
		doc[key] = fields
	}
	return doc, nil
}

// DecodeValue parses one JSON value with the number rules of DecodeDocument.
func DecodeValue(b []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return convertNumbers(v)
}

func convertNumbers(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return v.Float64()
	case map[string]interface{}:
		for k, elem := range v {
			c, err := convertNumbers(elem)
			if err != nil {
				return nil, err
			}
			v[k] = c
		}
	case []interface{}:
		for i, elem := range v {
			c, err := convertNumbers(elem)
			if err != nil {
				return nil, err
			}
			v[i] = c
		}
	}
	return v, nil
}
