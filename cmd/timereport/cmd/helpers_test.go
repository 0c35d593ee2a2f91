package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeInput writes content to a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "times.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores package-level flag variables, which cobra leaves set
// between Execute calls.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile = DefaultConfigFile
	logLevel = ""
	logFormat = ""
	onMalformed = ""
	noColor = false
	t.Cleanup(func() {
		cfgFile = DefaultConfigFile
		logLevel = ""
		logFormat = ""
		onMalformed = ""
		noColor = false
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

// executeRoot runs the root command with args and stdin, returning stdout and
// stderr separately.
func executeRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	// Keep log output off the test's stderr unless the test chose a destination.
	if _, ok := os.LookupEnv("TIMEREPORT_LOGGING_OUTPUT"); !ok {
		t.Setenv("TIMEREPORT_LOGGING_OUTPUT", filepath.Join(t.TempDir(), "timereport.log"))
	}

	var stdout, stderr bytes.Buffer
	// A nil slice would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
