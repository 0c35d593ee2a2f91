package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/timereport/internal/config"
)

// ErrSourceUnavailable is returned when the input cannot be opened for reading.
var ErrSourceUnavailable = errors.New("unable to open the file for reading")

// resolveSource picks the input path: the file argument, then input.path,
// then an interactive prompt.
func resolveSource(cmd *cobra.Command, args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.Path != "" {
		return cfg.Input.Path, nil
	}
	return promptPath(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// promptPath asks for a file name on out and reads one line from in.
func promptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter file name: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: error reading the file name: %v", ErrSourceUnavailable, err)
	}

	path := strings.TrimRight(line, "\r\n")
	if path == "" {
		return "", fmt.Errorf("%w: no file name given", ErrSourceUnavailable)
	}
	return path, nil
}

func openSource(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return file, nil
}
