package cmd

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/qaforge/patloc/errext"
	"github.com/qaforge/patloc/lib/consts"
)

// BannerColor is the color of the banner printed by the root command.
var BannerColor = color.New(color.FgCyan) //nolint:gochecknoglobals

//nolint:gochecknoglobals
var (
	outMutex  = &sync.Mutex{}
	stdoutTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderrTTY = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	stdout    = &consoleWriter{Writer: colorable.NewColorableStdout(), isTTY: stdoutTTY, mutex: outMutex}
	stderr    = &consoleWriter{Writer: colorable.NewColorableStderr(), isTTY: stderrTTY, mutex: outMutex}
)

// A writer that syncs writes with a mutex, so log lines and command output
// interleave cleanly.
type consoleWriter struct {
	io.Writer
	isTTY bool
	mutex *sync.Mutex
}

func (w *consoleWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	n, err = w.Writer.Write(p)
	w.mutex.Unlock()
	return n, err
}

// This is to keep all fields needed for the main/root patloc command
type rootCommand struct {
	logger  *logrus.Logger
	cmd     *cobra.Command
	logFmt  string
	verbose bool
	noColor bool
}

func newRootCommand(logger *logrus.Logger) *rootCommand {
	c := &rootCommand{logger: logger}
	// the base command when called without any subcommands.
	c.cmd = &cobra.Command{
		Use:               "patloc",
		Short:             "a pattern-based element locator resolver",
		Long:              BannerColor.Sprintf("\n%s", consts.Banner()),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	return c
}

func (c *rootCommand) persistentPreRunE(_ *cobra.Command, _ []string) error {
	if err := c.setupLoggers(); err != nil {
		return err
	}
	if c.noColor {
		stdout.Writer = colorable.NewNonColorable(os.Stdout)
		stderr.Writer = colorable.NewNonColorable(os.Stderr)
		color.NoColor = true
	}
	stdlog.SetOutput(c.logger.Writer())
	c.logger.Debugf("patloc version: v%s", consts.FullVersion())
	return nil
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&c.logFmt, "logformat", "", "log output format")
	return flags
}

func (c *rootCommand) setupLoggers() error {
	if c.verbose {
		c.logger.SetLevel(logrus.DebugLevel)
	}
	c.logger.SetOutput(stderr)

	switch c.logFmt {
	case "json":
		c.logger.SetFormatter(&logrus.JSONFormatter{})
		c.logger.Debug("Logger format: JSON")
	case "", "text":
		c.logger.SetFormatter(&logrus.TextFormatter{ForceColors: stderrTTY, DisableColors: c.noColor})
		c.logger.Debug("Logger format: TEXT")
	default:
		return fmt.Errorf("unsupported log format `%s`", c.logFmt)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	logger := &logrus.Logger{
		Out:       os.Stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	c := newRootCommand(logger)
	c.cmd.AddCommand(
		getResolveCmd(logger),
		getRolesCmd(),
		getCheckCmd(logger),
		getVersionCmd(),
	)

	if err := c.cmd.Execute(); err != nil {
		fields := logrus.Fields{}
		code := -1
		var ec errext.HasExitCode
		if errors.As(err, &ec) {
			code = int(ec.ExitCode())
		}
		var hint errext.HasHint
		if errors.As(err, &hint) {
			fields["hint"] = hint.Hint()
		}

		logger.WithFields(fields).Error(err)
		os.Exit(code)
	}
}

// fprintf panics when there's an error writing to the supplied io.Writer
func fprintf(w io.Writer, format string, a ...interface{}) (n int) {
	n, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		panic(err.Error())
	}
	return n
}
