package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"

	"github.com/sells-group/growth-cli/internal/tabular"
)

// Output formats accepted by every listing command.
const (
	formatTable = "table"
	formatCSV   = "csv"
	formatXLSX  = "xlsx"
)

func validateFormat(cmdName, format string) error {
	switch format {
	case formatTable, formatCSV, formatXLSX:
		return nil
	default:
		return eris.Errorf("%s: --format must be table, csv or xlsx (got %q)", cmdName, format)
	}
}

// writeResults renders header and rows to outputPath (stdout when empty) in
// the requested format. xlsx always needs an output path.
func writeResults(cmdName, format, outputPath string, header []string, rows [][]string) error {
	if format == formatXLSX {
		if outputPath == "" {
			return eris.Errorf("%s: --output is required for xlsx", cmdName)
		}
		return tabular.WriteXLSX(outputPath, cmdName, header, rows)
	}

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "%s: create output file %s", cmdName, outputPath)
		}
		defer f.Close() //nolint:errcheck
		w = f
	}

	switch format {
	case formatCSV:
		return tabular.WriteCSV(w, header, rows)
	case formatTable:
		return writeTable(w, header, rows)
	default:
		return eris.Errorf("%s: unsupported format %q", cmdName, format)
	}
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return eris.Wrap(err, "write table header")
	}
	sep := make([]string, len(header))
	for i, h := range header {
		sep[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(sep, "\t")); err != nil {
		return eris.Wrap(err, "write table separator")
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(r, "\t")); err != nil {
			return eris.Wrap(err, "write table row")
		}
	}
	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "flush table")
	}
	return nil
}

// formatMoney rounds to whole rupees and groups thousands, e.g. 1,250,000.
func formatMoney(amount float64) string {
	n := int64(math.Round(amount))
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	if neg {
		return "-" + string(result)
	}
	return string(result)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// kv is one key=value pair from a flag, in flag order.
type kv struct {
	Key   string
	Value string
}

// parsePairs parses "a=1,b=2" into ordered pairs. Keys are trimmed.
func parsePairs(s string) ([]kv, error) {
	var out []kv
	for _, part := range splitAndTrim(s) {
		k, v, ok := strings.Cut(part, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, eris.Errorf("invalid pair %q, want key=value", part)
		}
		out = append(out, kv{Key: k, Value: strings.TrimSpace(v)})
	}
	return out, nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
