// fqbn resolves and checks fully qualified board names.
//
// Usage:
//
//	fqbn [flags] FQBN
//
// By default it prints the resolved FQBN: the board's menu defaults (--menus),
// the options written in FQBN and in --merge, then every --set override,
// limited to --max-options options. --check only validates FQBN and --equals
// compares it with another FQBN regardless of option order.
//
// A TOML config file (--config) may set menus, strict, max_options and
// log_level; flags given on the command line take precedence.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/moffa90/go-fqbn/fqbn"
	"github.com/moffa90/go-fqbn/menu"
	"github.com/moffa90/go-fqbn/resolve"
)

// exitError ends the program with a status code and no further message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func (e *exitError) ExitCode() int { return e.code }

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath string
		menusPath  string
		sets       []string
		merge      string
		equals     string
		strict     bool
		maxOptions int
		sanitize   bool
		check      bool
		logLevel   string
	)

	flagSet := pflag.NewFlagSet("fqbn", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a TOML config file")
	flagSet.StringVar(&menusPath, "menus", "", "board menu descriptor file (.yaml, .toml or .json)")
	flagSet.StringArrayVar(&sets, "set", nil, "override a config option as KEY=VALUE (repeatable)")
	flagSet.StringVar(&merge, "merge", "", "merge the config options of another FQBN of the same board")
	flagSet.StringVar(&equals, "equals", "", "compare with another FQBN and print true or false")
	flagSet.BoolVar(&strict, "strict", false, "reject options the board menus do not define")
	flagSet.IntVar(&maxOptions, "max-options", 0, "keep at most N config options (0 = no limit)")
	flagSet.BoolVar(&sanitize, "sanitize", false, "drop all config options from the result")
	flagSet.BoolVar(&check, "check", false, "only validate FQBN; exit status 1 if invalid")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fqbn [flags] FQBN\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("expected exactly one FQBN argument, got %d", flagSet.NArg())
	}
	input := flagSet.Arg(0)

	cfg := defaultCLIConfig()
	if configPath != "" {
		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}
	}
	if flagSet.Changed("menus") {
		cfg.MenusPath = menusPath
	}
	if flagSet.Changed("strict") {
		cfg.Strict = strict
	}
	if flagSet.Changed("max-options") {
		if maxOptions < 0 {
			return fmt.Errorf("--max-options must not be negative, got %d", maxOptions)
		}
		cfg.MaxOptions = maxOptions
	}
	if flagSet.Changed("log-level") {
		level, err := parseLogLevel(logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if check {
		f := fqbn.Valid(input)
		if f == nil {
			logger.Info("invalid FQBN", "fqbn", input)
			return &exitError{code: 1}
		}
		fmt.Fprintln(stdout, f)
		return nil
	}

	if flagSet.Changed("equals") {
		a, err := fqbn.Parse(input)
		if err != nil {
			return err
		}
		b, err := fqbn.Parse(equals)
		if err != nil {
			return err
		}
		equal := a.Equal(b)
		fmt.Fprintln(stdout, equal)
		if !equal {
			return &exitError{code: 1}
		}
		return nil
	}

	var menus []fqbn.ConfigOption
	if cfg.MenusPath != "" {
		var err error
		menus, err = menu.Parse(cfg.MenusPath)
		if err != nil {
			return fmt.Errorf("load menus %s: %w", cfg.MenusPath, err)
		}
		logger.Debug("menus loaded", "path", cfg.MenusPath, "count", len(menus))
	}

	resolver := resolve.New(
		resolve.WithLogger(logger),
		resolve.WithStrict(cfg.Strict),
		resolve.WithMaxOptions(cfg.MaxOptions),
		resolve.WithStepCallback(func(s resolve.Step) {
			logger.Debug("resolve step", "phase", s.Phase, "fqbn", s.FQBN.String(), "changed", s.Changed)
		}),
	)

	if merge != "" {
		base, err := fqbn.Parse(input)
		if err != nil {
			return err
		}
		merged, err := base.WithFQBN(merge)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		input = merged.String()
	}

	f, err := resolver.Resolve(input, menus, sets...)
	if err != nil {
		return err
	}

	if sanitize {
		f = f.Sanitize()
	}

	fmt.Fprintln(stdout, f)
	return nil
}
