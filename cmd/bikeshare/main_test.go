package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,480,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,360,Adams Mill & Columbia Rd NW,15th & K St NW,Customer
`

// execute runs the root command with args and scripted stdin, isolated from
// the caller's environment.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, key := range []string{"DATA_DIR", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "METRICS_FILE"} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func dataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(washingtonCSV), 0o600))
	return dir
}

func TestHelp_listsCommands(t *testing.T) {
	out, _, err := execute(t, "", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "bikeshare")
	assert.Contains(t, out, "import")
	assert.Contains(t, out, "migrate")
	assert.Contains(t, out, "--data-dir")
}

func TestExplore_singleSession(t *testing.T) {
	input := "Washington\nall\nall\nyes\nno\nno\n"

	out, _, err := execute(t, input, "--data-dir", dataDir(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, out, "The common month was June.")
	assert.Contains(t, out, "Total travel time was 14 minutes.")
	assert.Contains(t, out, "14th & Belmont St NW")
	assert.NotContains(t, out, "Gender")
}

func TestExplore_inputClosedIsCleanExit(t *testing.T) {
	_, _, err := execute(t, "washington\n", "--data-dir", dataDir(t))

	assert.NoError(t, err)
}

func TestExplore_missingDataFileFails(t *testing.T) {
	_, stderr, err := execute(t, "chicago\nall\nall\n", "--data-dir", t.TempDir(), "--log-level", "error")

	require.Error(t, err)
	assert.Contains(t, stderr, "load failed")
}

func TestExplore_writesMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bikeshare.prom")
	t.Setenv("METRICS_FILE", path)

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader("washington\nall\nall\nno\nno\n"), &out, &errOut)
	cmd.SetArgs([]string{"--data-dir", dataDir(t)})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bikeshare_sessions_total 1")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "verbose")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestImport_requiresDatabase(t *testing.T) {
	_, _, err := execute(t, "", "import", "--city", "washington")

	assert.ErrorIs(t, err, errNoDatabase)
}

func TestImport_unknownCity(t *testing.T) {
	_, _, err := execute(t, "", "import", "--city", "boston")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boston")
}

func TestMigrate_requiresDatabase(t *testing.T) {
	_, _, err := execute(t, "", "migrate")

	assert.ErrorIs(t, err, errNoDatabase)
}
