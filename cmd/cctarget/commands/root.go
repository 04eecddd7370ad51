// Package commands implements the cctarget command line.
package commands

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	build "github.com/thoreinstein/cctarget/cmd"
	"github.com/thoreinstein/cctarget/internal/config"
	"github.com/thoreinstein/cctarget/internal/errors"
	"github.com/thoreinstein/cctarget/internal/logging"
	"github.com/thoreinstein/cctarget/internal/paths"
	"github.com/thoreinstein/cctarget/internal/report"
	"github.com/thoreinstein/cctarget/internal/target"
)

// debugEnv raises the log level without touching the config file.
const debugEnv = "CCTARGET_DEBUG"

// argsSeparator is prepended to the arguments so cobra never resolves a
// token to one of its hidden commands; runReport removes it again.
const argsSeparator = "--"

// activeConfig is the configuration for this run; defaults when loading failed.
var activeConfig = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// logFile is the open --log-file handle, closed by Execute.
var logFile io.Closer

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	// cobra would otherwise add a completion subcommand when "completion"
	// is the first argument.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initConfig() {
	config.Init()
	cfg, err := config.Load("")
	if err != nil {
		configLoadErr = err
		cfg = config.Default()
	} else {
		configLoadErr = nil
	}
	activeConfig = cfg
}

var rootCmd = &cobra.Command{
	Use:   "cctarget [arg...]",
	Short: "Print the compilation target of this binary",
	Long: `cctarget prints the operating system, CPU architecture, compiler and
pointer width the binary was built for, then echoes its arguments.

Every value is fixed when the binary is built, so cross-compiling cctarget
(GOOS=windows GOARCH=386 go build ./cmd/cctarget) and running the result is
a quick way to confirm what a toolchain actually produced.

cctarget takes no flags. Every argument, including ones that look like
flags, is printed back with its 1-based position.

Logging goes to stderr and is controlled by $XDG_CONFIG_HOME/cctarget/config.yaml,
CCTARGET_* environment variables, or CCTARGET_DEBUG=1.`,
	Example: `  # Report the build target
  cctarget

  # Report and echo arguments
  cctarget foo bar

  # Inspect a cross-compiled build
  GOOS=linux GOARCH=arm64 go build -o cctarget-arm64 ./cmd/cctarget`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		setupLogging(cmd, activeConfig)
		return nil
	},
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == argsSeparator {
		args = args[1:]
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	info := target.Host()
	logger.Debug("resolved build target",
		"os", info.OS,
		"arch", info.Arch,
		"compiler", info.Compiler,
		"toolchain", info.Toolchain,
		"pointer_size", info.PointerSize,
	)
	for i, arg := range args {
		logger.Log(ctx, logging.LevelTrace, "argument", "index", i+1, "arg", arg)
	}

	out := cmd.OutOrStdout()
	buf := bufio.NewWriter(out)
	r := report.New(buf, report.WithColor(logging.UseColor(out, activeConfig.ColorMode())))

	_ = r.Banner()
	_ = r.Target(info)
	_ = r.Arguments(args)

	err := r.Err()
	if err == nil {
		err = buf.Flush()
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing report"), "check that stdout is writable")
	}
	return nil
}

// setupLogging installs the default logger from cfg. Problems with the
// configuration or the log file are logged as warnings; they never stop
// the report.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	level := cfg.LogLevel()
	if v, ok := os.LookupEnv(debugEnv); ok {
		switch v {
		case "1", "true":
			level = slog.LevelDebug
		case "2":
			level = logging.LevelTrace
		}
	}

	handler := logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: cfg.LogFormat(),
		Output: cmd.ErrOrStderr(),
	})

	var fileErr error
	if path := cfg.LogFile(); path != "" {
		f, err := openLogFile(path)
		if err != nil {
			fileErr = err
		} else {
			logFile = f
			handler = logging.NewMultiHandler(handler, logging.NewFormatHandler(logging.Config{
				Level:  level,
				Format: logging.FormatJSON,
				Output: f,
			}))
		}
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	cmd.SetContext(logging.NewContext(cmd.Context(), logger))

	logger.Debug("starting", "version", build.Version, "commit", build.Commit, "built", build.Date)
	if configLoadErr != nil {
		logger.Warn("ignoring configuration, using defaults",
			"error", configLoadErr,
			"path", paths.ConfigFile(),
			"suggestion", errors.Suggestion(configLoadErr),
		)
	}
	if fileErr != nil {
		logger.Warn("log file unavailable", "error", fileErr)
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	return f, nil
}

// Execute runs cctarget with args (without the program name) and returns
// the process exit code.
func Execute(args []string) int {
	rootCmd.SetArgs(append([]string{argsSeparator}, args...))

	// Replaced by setupLogging; catches failures inside cobra before that.
	fallback := logging.New(logging.Config{
		Level:  slog.LevelWarn,
		Format: logging.FormatText,
		Output: rootCmd.ErrOrStderr(),
	})
	rootCmd.SetContext(logging.NewContext(context.Background(), fallback))

	err := rootCmd.Execute()
	if err != nil {
		logger := logging.FromContext(rootCmd.Context())
		if hint := errors.Suggestion(err); hint != "" {
			logger.Error("cctarget failed", "error", err, "suggestion", hint)
		} else {
			logger.Error("cctarget failed", "error", err)
		}
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	return errors.ExitCode(err)
}

// Root returns the root command, for documentation generators.
func Root() *cobra.Command {
	return rootCmd
}
