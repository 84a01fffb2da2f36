package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// headerLines is the number of lines between the marker and the first row:
// a border, the column header and another border.
const headerLines = 3

// Parser extracts the Package Pins Summary table from report text.
type Parser struct {
	pipe lexer.TokenType
	text lexer.TokenType
}

// NewParser creates a new report parser instance
func NewParser() (*Parser, error) {
	symbols := RowLexer.Symbols()
	pipe, ok := symbols["Pipe"]
	if !ok {
		return nil, fmt.Errorf("report: row lexer has no Pipe token")
	}
	text, ok := symbols["Text"]
	if !ok {
		return nil, fmt.Errorf("report: row lexer has no Text token")
	}
	return &Parser{pipe: pipe, text: text}, nil
}

// Parse reads a report and returns the pins of its summary table.
func (p *Parser) Parse(r io.Reader) (*PinSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	pins := NewPinSet()
	lineNo := 0
	inSection := false
	skip := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if !inSection {
			if strings.Contains(line, SummaryMarker) {
				inSection = true
				skip = headerLines
			}
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if strings.HasPrefix(line, "+-") {
			// Table has ended
			return pins, nil
		}

		rec, err := p.parseRow(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		if err := pins.Add(rec); err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("report: read: %w", err)
	}

	if !inSection {
		return nil, &ParseError{Err: ErrMarkerNotFound}
	}
	if skip > 0 {
		return nil, &ParseError{Line: lineNo, Err: ErrTruncatedHeader}
	}
	return pins, nil
}

// ParseString parses a report held in memory.
func (p *Parser) ParseString(input string) (*PinSet, error) {
	return p.Parse(strings.NewReader(input))
}

// ParseFile parses a report from a file path
func (p *Parser) ParseFile(filename string) (*PinSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("report: failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// SplitRow returns the trimmed cells of a table row. Text before the first
// and after the last pipe is dropped.
func (p *Parser) SplitRow(line string) ([]string, error) {
	lex, err := RowLexer.Lex("", strings.NewReader(line))
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	fragments := []string{""}
	for _, tok := range tokens {
		switch tok.Type {
		case p.pipe:
			fragments = append(fragments, "")
		case p.text:
			fragments[len(fragments)-1] += tok.Value
		}
	}
	if len(fragments) < 2 {
		return nil, nil
	}

	cells := fragments[1 : len(fragments)-1]
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells, nil
}

func (p *Parser) parseRow(line string) (PinRecord, error) {
	cells, err := p.SplitRow(line)
	if err != nil {
		return PinRecord{}, err
	}
	if len(cells) != FieldCount {
		return PinRecord{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(cells), FieldCount)
	}

	rec := PinRecord{
		PackagePin: cells[0],
		PinFunc:    cells[1],
		Site:       optional(cells[2]),
		SiteType:   optional(cells[3]),
		Direction:  optional(cells[5]),
		Port:       optional(cells[6]),
		Net:        optional(cells[7]),
	}
	if rec.PackagePin == "" {
		return PinRecord{}, fmt.Errorf("%w: %s", ErrMissingField, Columns[0])
	}
	if rec.PinFunc == "" {
		return PinRecord{}, fmt.Errorf("%w: %s of pin %s", ErrMissingField, Columns[1], rec.PackagePin)
	}
	if cells[4] != "" {
		bank, err := strconv.Atoi(cells[4])
		if err != nil {
			return PinRecord{}, fmt.Errorf("%w: %q on pin %s", ErrInvalidBank, cells[4], rec.PackagePin)
		}
		rec.Bank = &bank
	}
	return rec, nil
}

func optional(cell string) *string {
	if cell == "" {
		return nil
	}
	return &cell
}
