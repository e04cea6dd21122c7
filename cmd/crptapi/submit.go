/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/acronis/go-crptapi/config"
	"github.com/acronis/go-crptapi/documents"
	"github.com/acronis/go-crptapi/httpclient"
	"github.com/acronis/go-crptapi/log"
)

const envVarsPrefix = "crpt"

// SubmitCmd submits documents read from files.
type SubmitCmd struct {
	Config      string   `short:"c" help:"Path to config file (.yaml, .yml or .json)." type:"path"`
	EnvFile     string   `name:"env-file" help:"Path to .env file with CRPT_* variables." default:".env" type:"path"`
	Signature   string   `help:"Signature header value. Overrides documents.signature from config."`
	Concurrency int      `help:"Max number of concurrent submissions." default:"4"`
	Files       []string `arg:"" name:"file" help:"Document files (.json, .yaml or .yml)." type:"path"`
}

type appConfig struct {
	Log        *log.Config
	HTTPClient *httpclient.Config
	Documents  *documents.Config
}

func newAppConfig() *appConfig {
	return &appConfig{
		Log:        log.NewConfig(),
		HTTPClient: httpclient.NewConfig(),
		Documents:  documents.NewConfig(),
	}
}

// Run submits the documents. SIGINT and SIGTERM interrupt waiting submissions.
func (c *SubmitCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, os.Stdout)
}

func (c *SubmitCmd) run(ctx context.Context, out io.Writer) error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if err := loadDotEnv(c.EnvFile); err != nil {
		return err
	}
	cfg, err := loadAppConfig(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Signature != "" {
		cfg.Documents.Signature = c.Signature
	}

	logger, closeLog := log.NewLogger(cfg.Log)
	defer closeLog()

	httpClient := httpclient.NewWithOpts(cfg.HTTPClient, httpclient.Opts{
		RequestType: documents.RequestType,
		Logger:      logger,
	})
	client, err := documents.NewClient(cfg.Documents, documents.ClientOpts{HTTPClient: httpClient, Logger: logger})
	if err != nil {
		return err
	}

	var outMu sync.Mutex
	printf := func(format string, args ...interface{}) {
		outMu.Lock()
		defer outMu.Unlock()
		_, _ = fmt.Fprintf(out, format, args...)
	}

	var failed atomic.Int32
	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for _, path := range c.Files {
		g.Go(func() error {
			doc, readErr := readDocumentFile(path)
			if readErr != nil {
				failed.Inc()
				printf("%s: read failed: %v\n", path, readErr)
				return nil
			}
			res, submitErr := client.Submit(ctx, doc)
			if submitErr != nil {
				failed.Inc()
				printf("%s: %v\n", path, submitErr)
				return nil
			}
			printf("%s: submitted (status %d)\n", path, res.StatusCode)
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d documents were not submitted", n, len(c.Files))
	}
	return nil
}

// loadDotEnv sets environment variables from the file. Variables that are already set are not overridden.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func loadAppConfig(path string) (*appConfig, error) {
	cfg := newAppConfig()
	loader := config.NewDefaultLoader(envVarsPrefix)
	if path == "" {
		return cfg, loader.Load(cfg.Log, cfg.HTTPClient, cfg.Documents)
	}
	return cfg, loader.LoadFile(path, cfg.Log, cfg.HTTPClient, cfg.Documents)
}
