package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/alexanderramin/timekeep/internal/config"
	"github.com/alexanderramin/timekeep/internal/domain"
	"github.com/alexanderramin/timekeep/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(stdin io.Reader) (*App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	app := &App{
		Reports: service.NewReportService(),
		Config:  config.Config{Input: "-"},
		Stdin:   stdin,
		Stdout:  &stdout,
		Stderr:  &stderr,
	}
	return app, &stdout, &stderr
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

const sampleEntries = `!WORK-GSR 20250506 0900 1100 Victoria staffing
!WORK-DT 20250506 1400 1500 Sonic weekly
!WORK-DT 20250507 0900 1000 Standup
`

func TestRootReadsStdin(t *testing.T) {
	app, stdout, _ := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app))

	out := stdout.String()
	assert.Contains(t, out, "# DT")
	assert.Contains(t, out, "# GSR")
	assert.Less(t, strings.Index(out, "# DT"), strings.Index(out, "# GSR"))
}

func TestRootReadsFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleEntries), 0o644))

	app, stdout, _ := newTestApp(strings.NewReader(""))
	require.NoError(t, execute(t, app, path))

	assert.Contains(t, stdout.String(), "Sonic weekly")
}

func TestRootMissingFile(t *testing.T) {
	app, _, _ := newTestApp(strings.NewReader(""))
	err := execute(t, app, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")
}

func TestRootRangeFlag(t *testing.T) {
	app, stdout, _ := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app, "-r", "20250507:20250507"))

	out := stdout.String()
	assert.Contains(t, out, "Data covering range 20250507 to 20250507:")
	assert.Contains(t, out, "Standup")
	assert.NotContains(t, out, "Sonic weekly")
}

func TestRootSingleDayRange(t *testing.T) {
	app, stdout, _ := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app, "-r", "20250506"))

	out := stdout.String()
	assert.Contains(t, out, "Data covering range 20250506 to 20250506:")
	assert.Contains(t, out, "Sonic weekly")
	assert.NotContains(t, out, "Standup")
}

func TestRootMonthFlag(t *testing.T) {
	app, stdout, _ := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app, "-m", "5/25"))

	out := stdout.String()
	assert.Contains(t, out, "Data covering range 20250501 to 20250531:")
	assert.Contains(t, out, "Standup")
}

func TestRootMonthFlagWinsOverRange(t *testing.T) {
	app, stdout, _ := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app, "-r", "20250507:20250507", "-m", "5/25"))

	assert.Contains(t, stdout.String(), "Data covering range 20250501 to 20250531:")
}

func TestRootBadMonth(t *testing.T) {
	app, _, _ := newTestApp(strings.NewReader(sampleEntries))

	err := execute(t, app, "-m", "13")
	var mre *domain.MonthRangeError
	require.Error(t, err)
	assert.True(t, errors.As(err, &mre))
}

func TestRootOverlapSurfaces(t *testing.T) {
	input := "!WORK-DT 20250506 0900 1100 A\n!WORK-DT 20250506 1000 1200 B\n"
	app, _, _ := newTestApp(strings.NewReader(input))

	err := execute(t, app)
	var oe *domain.OverlapError
	require.Error(t, err)
	assert.True(t, errors.As(err, &oe))
}

func TestRootDebugFlagTraces(t *testing.T) {
	app, _, stderr := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app, "-d"))

	assert.Contains(t, stderr.String(), "parsed entry")
}

func TestRootQuietByDefault(t *testing.T) {
	app, _, stderr := newTestApp(strings.NewReader(sampleEntries))

	require.NoError(t, execute(t, app))

	assert.Empty(t, stderr.String())
}

// closedPipeWriter mimics writing to a pipe whose reader has gone away,
// the way os.Stdout fails once SIGPIPE is ignored.
type closedPipeWriter struct{}

func (closedPipeWriter) Write(p []byte) (int, error) {
	return 0, &os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}
}

func TestRootToleratesClosedPipe(t *testing.T) {
	app, _, _ := newTestApp(strings.NewReader(sampleEntries))
	app.Stdout = closedPipeWriter{}

	assert.NoError(t, execute(t, app), "a closed downstream pipe is not an error")
}

func TestRootInteractiveHint(t *testing.T) {
	app, _, stderr := newTestApp(strings.NewReader(""))
	app.IsInteractive = func() bool { return true }

	require.NoError(t, execute(t, app))

	assert.Contains(t, stderr.String(), "reading entries from stdin")
}
