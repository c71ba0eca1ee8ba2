package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/wikistat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Pages      wikistat.PageService // lookups with extracts
	Identities wikistat.PageService // identity-only lookups
	Sanitizer  wikistat.Sanitizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout  time.Duration `short:"t" default:"10s" help:"HTTP request timeout"`
	Endpoint string        `default:"https://en.wikipedia.org/w/api.php" help:"MediaWiki api.php endpoint"`
	Strict   bool          `help:"Fail on incomplete page records instead of skipping them"`
	LogLevel string        `default:"error" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFile  string        `type:"path" help:"Write logs to a rotating file instead of stderr"`

	Count  CountCmd  `cmd:"" default:"withargs" help:"Count unique words in an article (default)"`
	Lookup LookupCmd `cmd:"" help:"Print an article's page ID and resolved title"`
}

// CountCmd is the "count" subcommand.
type CountCmd struct {
	Title string `arg:"" help:"Article title"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Title string `arg:"" help:"Article title"`
}
