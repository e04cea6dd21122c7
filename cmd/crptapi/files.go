/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acronis/go-crptapi/config"
	"github.com/acronis/go-crptapi/documents"
)

// readDocumentFile reads a document from a JSON or YAML file depending on its extension.
func readDocumentFile(path string) (*documents.Document, error) {
	dataType, err := config.DataTypeFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc documents.Document
	switch dataType {
	case config.DataTypeJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case config.DataTypeYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s document: %w", dataType, err)
	}
	return &doc, nil
}
