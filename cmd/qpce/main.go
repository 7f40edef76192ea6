// Command qpce validates a quantum network topology document, and optionally
// a demand document against it, and prints the resulting model.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"qpce/internal/codec"
	"qpce/internal/config"
	"qpce/internal/domain"
	"qpce/internal/metrics"
	"qpce/internal/report"
	"qpce/internal/service"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath  string
	demandPath  string
	output      string
	logLevel    string
	logFormat   string
	metricsFile string
	writeConfig bool
	networkPath string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s\nqpce: error: %v\n", usageLine, err)
		return exitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "%s\nqpce: error: %v\n", usageLine, err)
		return exitUsage
	}

	if opts.writeConfig {
		return writeConfig(cfg, opts, stdout, stderr)
	}

	logger := newLogger(cfg.SlogLevel(), cfg.LogFormat, stderr)
	registry := metrics.NewRegistry()
	pipeline := service.NewPipeline(logger, registry, service.NewEventBus())

	code := build(pipeline, opts, cfg, stdout, stderr, logger)
	if code == exitOK {
		registry.MarkSuccess(time.Now())
	}

	if cfg.MetricsFile != "" {
		if err := registry.WriteTextfile(cfg.MetricsFile); err != nil {
			fmt.Fprint(stderr, report.NewRenderer(stderr).Error(err))
			return exitError
		}
		logger.Debug("metrics written", slog.String("path", cfg.MetricsFile))
	}
	return code
}

func build(p *service.Pipeline, opts options, cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger) int {
	fail := func(err error) int {
		logger.Error("construction failed",
			slog.String("stage", string(p.Stage())),
			slog.String("kind", service.ErrorKind(err)))
		io.WriteString(stderr, report.NewRenderer(stderr).Error(err))
		return exitError
	}

	network, err := p.LoadNetworkFile(opts.networkPath)
	if err != nil {
		return fail(err)
	}

	var demand *domain.Demand
	if opts.demandPath != "" {
		demand, err = p.LoadDemandFile(opts.demandPath)
		if err != nil {
			return fail(err)
		}
	}

	view := domain.DeriveView(network, demand)
	if cfg.Output == config.OutputSummary {
		io.WriteString(stdout, report.NewRenderer(stdout).Summary(view))
		return exitOK
	}

	c, err := codec.ForFormat(cfg.Output)
	if err != nil {
		return fail(err)
	}
	if err := c.Export(view, stdout); err != nil {
		return fail(err)
	}
	return exitOK
}

// writeConfig saves the merged configuration to the --config path, or to the
// default per-user location.
func writeConfig(cfg *config.Config, opts options, stdout, stderr io.Writer) int {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := cfg.Save(path); err != nil {
		fmt.Fprint(stderr, report.NewRenderer(stderr).Error(fmt.Errorf("write config %s: %w", path, err)))
		return exitError
	}
	fmt.Fprintf(stdout, "config written to %s\n", path)
	return exitOK
}

// loadConfig layers the config file, environment and flags, then validates.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case opts.configPath != "" && opts.writeConfig:
		// the file may not exist yet
		cfg, _, err = config.LoadFromPath(opts.configPath)
		if errors.Is(err, os.ErrNotExist) {
			cfg, err = config.DefaultConfig(), nil
		}
	case opts.configPath != "":
		cfg, _, err = config.LoadFromPath(opts.configPath)
	default:
		cfg, _, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.Getenv)

	if opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(opts.logLevel)
	}
	if opts.logFormat != "" {
		cfg.LogFormat = strings.ToLower(opts.logFormat)
	}
	if opts.output != "" {
		cfg.Output = strings.ToLower(opts.output)
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const usageLine = "usage: qpce [-h] [--config FILE] [--demand FILE] [--output FORMAT] [--log-level LEVEL] [--log-format FORMAT] [--metrics-file FILE] [--write-config] network-file"

// parseArgs accepts flags before and after the positional argument. After
// "--" every argument is positional.
func parseArgs(args []string, stdout io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("qpce", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.configPath, "config", "", "config file (default: search $QPCE_CONFIG, ./qpce.yaml, ~/.config/qpce)")
	fs.StringVar(&opts.demandPath, "demand", "", "demand document to build against the network")
	fs.StringVar(&opts.output, "output", "", "output format: summary, json or yaml (default summary)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default info)")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (default text)")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "save the merged settings to the --config file or ~/.config/qpce/config.yaml and exit")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				printUsage(fs, stdout)
			}
			return opts, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	switch len(positional) {
	case 0:
		if opts.writeConfig {
			return opts, nil
		}
		return opts, errors.New("the following arguments are required: network-file")
	case 1:
		opts.networkPath = positional[0]
		return opts, nil
	default:
		return opts, fmt.Errorf("unrecognized arguments: %s", strings.Join(positional[1:], " "))
	}
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build and validate a quantum network model from a topology document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "positional arguments:")
	fmt.Fprintln(w, "  network-file\ttopology document (YAML)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "options:")
	fmt.Fprintln(w, "  -h, --help\tshow this help message and exit")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}
