/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"encoding/json"
	"errors"
)

// Serializer encodes a document into the request body.
type Serializer interface {
	Serialize(doc *Document) ([]byte, error)
}

// SerializerFunc is an adapter to allow the use of ordinary functions as Serializer.
type SerializerFunc func(doc *Document) ([]byte, error)

// Serialize calls f(doc).
func (f SerializerFunc) Serialize(doc *Document) ([]byte, error) {
	return f(doc)
}

// JSONSerializer encodes documents into JSON.
type JSONSerializer struct{}

var _ Serializer = JSONSerializer{}

// Serialize encodes the document into JSON.
func (JSONSerializer) Serialize(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("document is nil")
	}
	return json.Marshal(doc)
}
