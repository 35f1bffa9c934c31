package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/alexanderramin/timekeep/internal/config"
	"github.com/alexanderramin/timekeep/internal/daterange"
	"github.com/alexanderramin/timekeep/internal/domain"
	"github.com/alexanderramin/timekeep/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the service implementations and streams used by CLI commands.
type App struct {
	Reports service.ReportService
	Config  config.Config

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "timekeep" command.
func NewRootCmd(app *App) *cobra.Command {
	var rangeFlag, monthFlag string
	var debugFlag int

	cmd := &cobra.Command{
		Use:   "timekeep [input]",
		Short: "Summarize !WORK time-tracking entries into per-client hour reports",
		Long: "Parses lines of the form '!WORK-CODE YYYYMMDD HHMM HHMM description',\n" +
			"groups them by business code, rejects overlapping entries and renders\n" +
			"one markdown hours table per business.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runReport(cmd, args, rangeFlag, monthFlag, debugFlag)
		},
	}

	cmd.Flags().StringVarP(&rangeFlag, "range", "r", "", "date window, '20250101:20250131' or a single day")
	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month window, '5' or '5/25'")
	cmd.Flags().IntVarP(&debugFlag, "debug", "d", 0, "debug level")
	// Bare -m means the current month, bare -d means level 1, matching the
	// optional-value flags of the original tool.
	cmd.Flags().Lookup("month").NoOptDefVal = strconv.Itoa(int(time.Now().Month()))
	cmd.Flags().Lookup("debug").NoOptDefVal = "1"

	return cmd
}

func (app *App) runReport(cmd *cobra.Command, args []string, rangeFlag, monthFlag string, debugFlag int) error {
	debug := app.Config.Debug
	if cmd.Flags().Changed("debug") {
		debug = debugFlag
	}
	ctx := app.loggerContext(cmd.Context(), debug)

	window, err := resolveWindow(rangeFlag, monthFlag)
	if err != nil {
		return err
	}

	in, closeIn, err := app.openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := app.Reports.Generate(ctx, in, window)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(app.Stdout, doc); err != nil {
		// Tolerate a closed downstream pipe, e.g. piping into head.
		if errors.Is(err, syscall.EPIPE) {
			return nil
		}
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// loggerContext attaches a stderr logger at the level implied by the debug
// setting. Verbosity travels only through this context, never through
// process-global state.
func (app *App) loggerContext(ctx context.Context, debug int) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.Disabled
	if debug > 0 {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: app.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// resolveWindow turns the range and month flags into an inclusive date
// interval. The month shorthand wins when both are given.
func resolveWindow(rangeFlag, monthFlag string) (*domain.DateInterval, error) {
	spec := rangeFlag
	if monthFlag != "" {
		expanded, err := daterange.ExpandMonth(monthFlag, time.Now())
		if err != nil {
			return nil, err
		}
		spec = expanded
	}
	if spec == "" {
		return nil, nil
	}

	window, err := daterange.ParseWindow(spec)
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// openInput resolves the input argument, falling back to the configured
// default. "-" reads stdin.
func (app *App) openInput(args []string) (io.Reader, func(), error) {
	name := app.Config.Input
	if len(args) == 1 {
		name = args[0]
	}

	if name == "-" {
		if app.IsInteractive != nil && app.IsInteractive() {
			fmt.Fprintln(app.Stderr, "reading entries from stdin (ctrl-d to finish)")
		}
		return app.Stdin, func() {}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
