package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	frontmark "github.com/goliatone/go-frontmark"
	"github.com/goliatone/go-frontmark/internal/logging/gologger"
)

func main() {
	var (
		contentDir      = flag.String("content-dir", "content", "Path to the document content root")
		pattern         = flag.String("pattern", "*.md", "Glob pattern applied when listing documents")
		filePath        = flag.String("file", "", "Document to preview (relative to the content root)")
		list            = flag.Bool("list", false, "List matching documents instead of previewing one")
		extensions      = flag.String("extensions", "", "Comma separated renderer extensions (defaults to config defaults)")
		formattedFields = flag.String("formatted-fields", "", "Comma separated metadata fields rendered as markup")
		literal         = flag.Bool("literal-as-markup", true, "Render literal block scalars as markup")
		logLevel        = flag.String("log-level", "info", "Log level for the preview run")
		logFormat       = flag.String("log-format", "console", "Log format: json, console or pretty")
	)

	flag.Parse()

	cfg := frontmark.DefaultConfig()
	cfg.LiteralAsMarkup = literal
	cfg.FormattedFields = splitList(*formattedFields)
	cfg.Logging = frontmark.LoggingConfig{Level: *logLevel, Format: *logFormat}
	if names := splitList(*extensions); len(names) > 0 {
		cfg.Render.Extensions = names
	}

	provider, err := gologger.NewProvider(cfg.Logging)
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	src, err := frontmark.NewDirSource(*contentDir, *pattern)
	if err != nil {
		log.Fatalf("open content root: %v", err)
	}

	rdr, err := frontmark.New(cfg,
		frontmark.WithLoggerProvider(provider),
		frontmark.WithTextSource(src),
	)
	if err != nil {
		log.Fatalf("configure reader: %v", err)
	}

	ctx := context.Background()

	if *list {
		locations, err := src.List(ctx)
		if err != nil {
			log.Fatalf("list documents: %v", err)
		}
		for _, location := range locations {
			fmt.Fprintln(os.Stdout, location)
		}
		return
	}

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	doc, err := rdr.Read(ctx, *filePath)
	if err != nil {
		log.Fatalf("read document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Location: %s\n\n", doc.Location)

	if doc.Metadata.Len() > 0 {
		encoded, err := json.MarshalIndent(doc.Metadata, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Metadata:\n%s\n\n", encoded)
		}
	}

	fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", doc.HTML)
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
