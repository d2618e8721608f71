// Package patterns loads custom board layouts from files.
// Supported formats are YAML (.yaml, .yml) and plain text (.txt).
package patterns

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// Pattern is a parsed board layout ready for board.FromPattern.
type Pattern struct {
	ID       string
	Name     string
	Rows     []string // Normalized so that board.MineMarker denotes mines
	FilePath string
}

// Board builds a fresh board from the pattern.
func (p Pattern) Board() (*board.Board, error) {
	b, err := board.FromPattern(p.Rows)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", p.ID, err)
	}
	return b, nil
}

// Size returns the pattern dimensions (width of the first row, row count).
func (p Pattern) Size() (int, int) {
	if len(p.Rows) == 0 {
		return 0, 0
	}
	return utf8.RuneCountInString(p.Rows[0]), len(p.Rows)
}

// Mines returns the number of mine markers in the pattern.
func (p Pattern) Mines() int {
	n := 0
	for _, row := range p.Rows {
		n += strings.Count(row, string(board.MineMarker))
	}
	return n
}

// yamlPattern is the on-disk YAML structure.
type yamlPattern struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Marker string   `yaml:"marker,omitempty"`
	Rows   []string `yaml:"rows"`
}

// ParseYAML parses a YAML pattern file.
//
//	id: cross
//	name: Cross
//	marker: "X"   # optional, defaults to "*"
//	rows:
//	  - " X "
//	  - "XXX"
func ParseYAML(data []byte) (Pattern, error) {
	var yp yamlPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	marker := board.MineMarker
	if yp.Marker != "" {
		r, size := utf8.DecodeRuneInString(yp.Marker)
		if size != len(yp.Marker) {
			return Pattern{}, fmt.Errorf("marker %q must be a single character", yp.Marker)
		}
		marker = r
	}

	p := Pattern{
		ID:   yp.ID,
		Name: yp.Name,
		Rows: normalizeRows(yp.Rows, marker),
	}
	return p, validate(p)
}

// ParseText parses a plain text pattern: one row per line.
// Empty lines are ignored. Before the first row, lines that are "#" or start
// with "# " are comments and a "# name: ..." comment sets the display name.
// Every other line is a row, so rows of spaces and rows starting with '#'
// are kept as cells.
func ParseText(data []byte) (Pattern, error) {
	var p Pattern
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if len(p.Rows) == 0 && isComment(line) {
			if name, ok := strings.CutPrefix(strings.TrimSpace(line[1:]), "name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		p.Rows = append(p.Rows, line)
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading text pattern: %w", err)
	}
	return p, validate(p)
}

func isComment(line string) bool {
	return line == "#" || strings.HasPrefix(line, "# ")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}

// normalizeRows rewrites a custom marker to board.MineMarker and any
// stray board.MineMarker to a space.
func normalizeRows(rows []string, marker rune) []string {
	if marker == board.MineMarker {
		return rows
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = strings.Map(func(r rune) rune {
			switch r {
			case marker:
				return board.MineMarker
			case board.MineMarker:
				return ' '
			default:
				return r
			}
		}, row)
	}
	return out
}

// validate checks that the rows form a rectangle.
func validate(p Pattern) error {
	_, err := board.FromPattern(p.Rows)
	return err
}
