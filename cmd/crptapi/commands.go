/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acronis/go-crptapi/documents"
	"github.com/acronis/go-crptapi/internal/libinfo"
)

// VersionCmd shows version information.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run() error {
	fmt.Printf("crptapi version %s\n", libinfo.Version())
	return nil
}

// SampleCmd prints a sample document that may be used as a template for submission.
type SampleCmd struct {
	Format string `help:"Output format (yaml, json)." enum:"yaml,json" default:"yaml"`
}

// Run prints the sample document to stdout.
func (c *SampleCmd) Run() error {
	return c.print(os.Stdout)
}

func (c *SampleCmd) print(w io.Writer) error {
	doc := documents.NewSampleDocument()
	if c.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
