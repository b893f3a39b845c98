package tables

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readTable parses a whitespace-separated integer table. Blank lines and
// '#' comments are skipped.
func readTable(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]int
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// readOptional is readTable that treats a missing file as empty.
func readOptional(path string) ([][]int, bool, error) {
	rows, err := readTable(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	return rows, err == nil, err
}

// requireWidth checks every row has exactly width columns.
func requireWidth(path string, rows [][]int, width int) error {
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%s: row %d: expected %d columns, got %d", path, i+1, width, len(row))
		}
	}
	return nil
}

// flatten concatenates all rows, so a sequence may be written on one line
// or one value per line.
func flatten(rows [][]int) []int {
	var out []int
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
