// Package cmd wires up the CLI flags and dispatches to the session core.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"goft/config"
	"goft/internal/metrics"
	"goft/internal/protocol"
	"goft/internal/session"
	"goft/internal/transport"
	"goft/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X goft/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs one file-transfer session.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{
		ConnTimeout: config.DefaultConnTimeout,
		Wire:        config.DefaultWire,
	}

	// ── layered configuration ────────────────────────────────────────
	// Defaults, then the INI file, then environment, then flags.  The
	// config file path itself has to come from the raw args.
	if path := configPathFromArgs(args); path != "" {
		if err := config.LoadFromFile(cfg, path); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("goft", flag.ContinueOnError)

	// ── request ──────────────────────────────────────────────────────
	fs.BoolVarP(&cfg.ListDir, "list", "l", cfg.ListDir, "Request the server's directory listing")
	fs.StringVarP(&cfg.FileName, "get", "g", cfg.FileName, "Request the named file")

	// ── connection ───────────────────────────────────────────────────
	fs.BoolVarP(&cfg.NoDNS, "no-dns", "n", cfg.NoDNS, "Numeric-only, no DNS resolution")

	var acceptSec int
	if cfg.AcceptTimeout > 0 {
		acceptSec = int(cfg.AcceptTimeout / time.Second)
	}
	fs.IntVarP(&acceptSec, "timeout", "w", acceptSec, "Seconds to wait for the server's dial-back (0 = forever)")

	// ── protocol ─────────────────────────────────────────────────────
	fs.StringVar(&cfg.Wire, "wire", cfg.Wire, "Wire format: legacy or tagged")

	// ── output ───────────────────────────────────────────────────────
	fs.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Save the response payload to a file")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "Print a metrics snapshot on exit")

	// Count flags start from zero, so layer the file/env verbosity
	// back on after the parse.
	baseVerbose := cfg.Verbose
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var configPath string
	fs.StringVar(&configPath, "config", "", "INI config file")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	fs.BoolVar(&dryRun, "dry-run", false, "Validate the configuration and exit")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("goft %s\n", version)
		return nil
	}

	cfg.AcceptTimeout = time.Duration(acceptSec) * time.Second
	cfg.Verbose += baseVerbose

	// ── positional arguments ─────────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	return run(ctx, cfg)
}

// run builds the session components from a validated config and
// executes the handshake.
func run(ctx context.Context, cfg *config.Config) error {
	// Verbosity 0 still prints the protocol progress messages; -v
	// shifts the whole scale up from there.
	logger := util.NewLogger(1 + cfg.Verbose)

	codec, err := protocol.CodecByName(cfg.Wire)
	if err != nil {
		return err
	}

	req := protocol.ListDirectory()
	if cfg.FileName != "" {
		req = protocol.GetFile(cfg.FileName)
	}

	var collector *metrics.Collector
	if cfg.Stats {
		collector = metrics.New()
	}

	// The response goes to a file with -o, to the console otherwise.
	// Either way the server's intent code is stripped and kept aside.
	var buf bytes.Buffer
	sink := &buf
	var outFile *os.File
	if cfg.OutputPath != "" {
		outFile, err = os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer outFile.Close()
	}
	var iw *protocol.IntentWriter
	if outFile != nil {
		iw = protocol.NewIntentWriter(outFile)
	} else {
		iw = protocol.NewIntentWriter(sink)
	}

	proto := &session.Protocol{
		Dialer:        &transport.ControlDialer{Timeout: cfg.ConnTimeout, NoDNS: cfg.NoDNS},
		Codec:         codec,
		Server:        cfg.Server,
		ControlPort:   cfg.ControlPort,
		DataPort:      cfg.DataPort,
		AcceptTimeout: cfg.AcceptTimeout,
		Logger:        logger,
		Metrics:       collector,
		Sink:          iw,
	}

	res, runErr := proto.Run(ctx, req)
	if flushErr := iw.Flush(); runErr == nil && flushErr != nil {
		runErr = flushErr
	}

	if cfg.Stats && collector != nil {
		if snap, jerr := collector.JSON(); jerr == nil {
			fmt.Fprintln(os.Stderr, string(snap))
		}
	}
	if runErr != nil {
		return runErr
	}

	switch iw.Intent() {
	case protocol.IntentNotFound:
		logger.Warn("server reports the requested file was not found")
	case protocol.IntentUnknown:
		logger.Warn("server did not understand the request")
	}

	if outFile != nil {
		logger.Info("saved %d response bytes to %s", res.BytesReceived, cfg.OutputPath)
		return nil
	}

	payload := protocol.TrimPadding(buf.Bytes())
	fmt.Printf("received response: %s\n", strings.TrimRight(string(payload), "\n"))
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional consumes <server> <servPort> <dataPort>.
func parsePositional(cfg *config.Config, remaining []string) error {
	if len(remaining) > 3 {
		return fmt.Errorf("too many arguments (want server, server port, data port)")
	}

	if len(remaining) >= 1 {
		cfg.Server = remaining[0]
	}
	if len(remaining) >= 2 {
		port, err := config.ParsePort(remaining[1])
		if err != nil {
			return fmt.Errorf("server port: %w", err)
		}
		cfg.ControlPort = port
	}
	if len(remaining) >= 3 {
		port, err := config.ParsePort(remaining[2])
		if err != nil {
			return fmt.Errorf("data port: %w", err)
		}
		cfg.DataPort = port
	}
	return nil
}

// configPathFromArgs pre-scans raw args for --config so the file can
// be loaded before the real flag parse establishes defaults.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `goft – two-connection file-transfer client v%s

Sends one command over a control connection, then receives the result
on a data connection the server opens back to this client.

Usage:
  goft -l [options] <server> <servPort> <dataPort>          List directory
  goft -g <file> [options] <server> <servPort> <dataPort>   Fetch a file

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  goft -l flip1.example.edu 5000 6000             Directory listing
  goft -g notes.txt host.example.com 5000 6000    Fetch notes.txt
  goft -g big.txt -o big.txt srv 5000 6000        Save to a local file
  goft -l -w 30 srv 5000 6000                     Give up after 30s
`)
}
