package main

import (
	"fmt"
	"os"

	"simpledb/console"
	"simpledb/internal/config"

	"github.com/alecthomas/kong"
)

var cli struct {
	Config       string `short:"c" type:"path" help:"Path to a config file (json, toml or yaml). Defaults to ./config.json when present."`
	LogLevel     string `help:"Log level: debug, info, warn or error."`
	Prompt       string `help:"Prompt printed before each command."`
	NoBanner     bool   `help:"Do not print the welcome and goodbye lines."`
	StrictCommit bool   `help:"Report NO TRANSACTION for COMMIT outside a transaction."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("simpledb"),
		kong.Description("An in-memory key-value store with nested transactions, driven by commands on stdin."),
	)

	if err := config.LoadConfig(cli.Config); err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: %v\n", err)
		os.Exit(1)
	}

	if cli.LogLevel != "" {
		config.Config.LogLevel = cli.LogLevel
	}
	if cli.Prompt != "" {
		config.Config.Prompt = cli.Prompt
	}
	if cli.NoBanner {
		config.Config.Banner = false
	}
	if cli.StrictCommit {
		config.Config.StrictCommit = true
	}

	if err := console.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: %v\n", err)
		os.Exit(1)
	}
}
