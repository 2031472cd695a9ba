// Package main is the entry point for the rewind demo tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/internal/config"
	"github.com/dshills/rewind/internal/script"
	"github.com/dshills/rewind/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	capacity   int
	strict     bool
	watch      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Flags override the config file.
	if opts.capacity > 0 {
		cfg.Capacity = opts.capacity
	}
	if opts.strict {
		cfg.Mode = rewind.ModeStrict.String()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.scriptPath != "" {
		return runScript(cfg, opts.scriptPath)
	}
	return runDemo(cfg, opts)
}

// runScript executes a Lua script against a fresh store and reports
// the final state.
func runScript(cfg config.Config, path string) int {
	var initial any
	if cfg.Demo.Initial != "" {
		initial = cfg.Demo.Initial
	}

	session := script.NewSession(rewind.New(initial, cfg.StoreOptions()...))
	defer session.Close()

	if err := session.RunFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	store := session.Store()
	fmt.Printf("present: %v\n", store.Present())
	fmt.Printf("undo steps: %d, redo steps: %d\n", store.UndoCount(), store.RedoCount())
	return 0
}

// runDemo starts the interactive terminal application.
func runDemo(cfg config.Config, opts options) int {
	app, err := tui.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	if opts.watch && opts.configPath != "" {
		watcher, err := config.Watch(opts.configPath, app.PostConfig,
			config.WithErrorHandler(func(err error) {
				fmt.Fprintf(os.Stderr, "config reload: %v\n", err)
			}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch config: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "rewind.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "rewind.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua script to run instead of the demo")
	flag.StringVar(&opts.scriptPath, "s", "", "Lua script to run (shorthand)")
	flag.IntVar(&opts.capacity, "capacity", 0, "History capacity (overrides config)")
	flag.BoolVar(&opts.strict, "strict", false, "Clear redo targets on every new write")
	flag.BoolVar(&opts.watch, "watch", false, "Reload configuration when the file changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Rewind - bounded undo/redo history demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rewind [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rewind                      Run the interactive demo\n")
		fmt.Fprintf(os.Stderr, "  rewind -capacity 100        Demo with a deeper history\n")
		fmt.Fprintf(os.Stderr, "  rewind -strict              Conventional linear history\n")
		fmt.Fprintf(os.Stderr, "  rewind -s history.lua       Run a script against a store\n")
		fmt.Fprintf(os.Stderr, "  rewind -c app.toml -watch   Live-reload configuration\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Rewind %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
