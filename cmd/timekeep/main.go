package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/timekeep/internal/cli"
	"github.com/alexanderramin/timekeep/internal/config"
	"github.com/alexanderramin/timekeep/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Without this the runtime re-raises SIGPIPE for writes to stdout, so
	// a closed downstream pipe would kill the process before the write
	// error ever surfaces to the report writer.
	signal.Ignore(syscall.SIGPIPE)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{
		Reports: service.NewReportService(),
		Config:  cfg,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	// Detect an interactive terminal so reading stdin by default does not
	// look like a hang.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
