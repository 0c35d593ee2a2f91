package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/timereport/internal/ingest"
	"github.com/dbsmedya/timereport/internal/logger"
	"github.com/dbsmedya/timereport/internal/record"
)

// maxCellWidth truncates long field text in the validation table.
const maxCellWidth = 32

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an input file line by line",
	Long: `Validate parses every line of the input file and prints one row per
line without emitting the reports.

Checks performed:
  - Configuration syntax and values
  - Each line has a comma separating two times
  - Both times match the line's format (clock-face or ISO-like)
  - Hours and minutes are within range

Malformed lines are always reported rather than aborting, and the command
exits nonzero when any are found.

Example:
  timereport validate times.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validationRow is one line of the validation table.
type validationRow struct {
	line   int
	format string
	first  string
	second string
	status string
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	path, err := resolveSource(cmd, args, cfg)
	if err != nil {
		return err
	}

	file, err := openSource(path)
	if err != nil {
		return err
	}
	defer file.Close()

	seq, stats, err := ingest.Run(file, ingest.Options{Logger: log.WithFile(path)})
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	rows := make([]validationRow, 0, stats.Records+stats.Skipped)
	err = seq.Forward(func(line int, rec record.Record) error {
		rows = append(rows, validationRow{
			line:   line,
			format: rec.Format.String(),
			first:  fmt.Sprintf("%s = %d", rec.TextA, rec.ValueA),
			second: fmt.Sprintf("%s = %d", rec.TextB, rec.ValueB),
			status: "ok",
		})
		return nil
	})
	if err != nil {
		return err
	}
	for _, bad := range stats.Malformed {
		rows = append(rows, validationRow{
			line:   bad.Line,
			format: "-",
			first:  bad.Text,
			status: "malformed: " + bad.Err.Error(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].line < rows[j].line })

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n=== Input Validation ===\n")
	fmt.Fprintf(out, "File: %s\n\n", path)
	writeTable(out, rows)

	fmt.Fprintf(out, "\nLines: %d  Records: %d  Malformed: %d  Blank: %d\n",
		stats.LinesRead, stats.Records, stats.Skipped, stats.Blank)

	if stats.Skipped > 0 {
		fmt.Fprintf(out, "❌ %d malformed line(s)\n", stats.Skipped)
		return fmt.Errorf("validation failed: %d malformed line(s) in %s", stats.Skipped, path)
	}

	fmt.Fprintln(out, "✅ All lines valid")
	return nil
}

// writeTable prints rows as left-aligned columns, measuring display width so
// wide characters in field text keep the columns straight.
func writeTable(w io.Writer, rows []validationRow) {
	header := []string{"LINE", "FORMAT", "FIRST", "SECOND", "STATUS"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			strconv.Itoa(r.line),
			r.format,
			runewidth.Truncate(r.first, maxCellWidth, "…"),
			runewidth.Truncate(r.second, maxCellWidth, "…"),
			r.status,
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if cw := runewidth.StringWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(row []string) {
		parts := make([]string, len(row))
		for i, c := range row {
			if i == len(row)-1 {
				parts[i] = c
				continue
			}
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}

	writeRow(header)
	for _, row := range cells {
		writeRow(row)
	}
}
