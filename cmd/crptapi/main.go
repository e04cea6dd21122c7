/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Command crptapi submits documents to the registry API under a client side rate limit.
//
// Usage:
//
//	crptapi submit --config config.yaml doc1.json doc2.yaml
//	crptapi sample > doc.yaml
//	crptapi version
package main

import (
	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface.
type CLI struct {
	Submit  SubmitCmd  `cmd:"" help:"Submit documents to the registry."`
	Sample  SampleCmd  `cmd:"" help:"Print a sample document."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

func main() {
	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name("crptapi"),
		kong.Description("Rate-limited client for the documents registry API."),
		kong.UsageOnError(),
	)
	err := kctx.Run(&cli)
	kctx.FatalIfErrorf(err)
}
