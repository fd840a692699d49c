package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/linkveil/linkveil/internal/config"
	"github.com/linkveil/linkveil/internal/logging"
	"github.com/linkveil/linkveil/internal/relay"
	"github.com/linkveil/linkveil/internal/server"
	"github.com/linkveil/linkveil/internal/server/routes"
	"github.com/linkveil/linkveil/internal/version"
)

// cliOptions collects the parsed CLI flags so tests can inject them.
type cliOptions struct {
	configPath  string
	checkOnly   bool
	showVersion bool
}

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

func main() {
	opts, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(stdErr, err.Error())
		os.Exit(2)
	}
	os.Exit(run(opts))
}

// run executes the selected mode and returns the process exit code.
func run(opts cliOptions) int {
	if opts.showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stdErr, "load config failed: %v\n", err)
		return 1
	}

	logger, err := logging.InitLogger(cfg)
	if err != nil {
		fmt.Fprintf(stdErr, "init logger failed: %v\n", err)
		return 1
	}

	if opts.checkOnly {
		fields := logging.BaseFields("check_config", opts.configPath)
		fields["listen_port"] = cfg.ListenPort
		fields["result"] = "ok"
		logger.WithFields(fields).Info("config validated")
		return 0
	}

	httpClient := server.NewUpstreamClient(cfg)
	relayHandler := relay.NewHandler(httpClient, logger, cfg)

	fields := logging.BaseFields("startup", opts.configPath)
	fields["listen_port"] = cfg.ListenPort
	fields["upstream_timeout"] = cfg.UpstreamTimeout.DurationValue().String()
	fields["max_redirects"] = cfg.MaxRedirects
	fields["version"] = version.Full()
	logger.WithFields(fields).Info("configuration loaded")

	if err := startHTTPServer(cfg, relayHandler, logger); err != nil {
		fmt.Fprintf(stdErr, "HTTP server failed: %v\n", err)
		return 1
	}
	return 0
}

// parseCLIFlags parses the CLI arguments and resolves the config path from
// flag and environment.
func parseCLIFlags(args []string) (cliOptions, error) {
	fs := flag.NewFlagSet("linkveil", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFlag string
		checkOnly  bool
		showVer    bool
	)

	fs.StringVar(&configFlag, "config", "", "config file path (default ./config.toml, overridable via LINKVEIL_CONFIG)")
	fs.BoolVar(&checkOnly, "check-config", false, "validate the config and exit")
	fs.BoolVar(&showVer, "version", false, "print version information")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("parse flags: %w", err)
	}

	path := os.Getenv("LINKVEIL_CONFIG")
	if configFlag != "" {
		path = configFlag
	}
	if path == "" {
		path = "config.toml"
	}

	return cliOptions{
		configPath:  path,
		checkOnly:   checkOnly,
		showVersion: showVer,
	}, nil
}

func startHTTPServer(cfg *config.Config, relayHandler server.RelayHandler, logger *logrus.Logger) error {
	app, err := server.NewApp(server.AppOptions{
		Logger: logger,
		Relay:  relayHandler,
	})
	if err != nil {
		return err
	}
	routes.RegisterPageRoutes(app)

	logger.WithFields(logrus.Fields{
		"action": "listen",
		"port":   cfg.ListenPort,
	}).Info("fiber server starting")

	return app.Listen(server.ListenAddr(cfg.ListenPort))
}
