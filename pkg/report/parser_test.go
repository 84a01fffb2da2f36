package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/report_package_pins.txt"

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	parser, err := NewParser()
	require.NoError(t, err, "Failed to create parser")
	return parser
}

// table wraps rows in the marker, header and closing border.
func table(rows ...string) string {
	var b strings.Builder
	b.WriteString("Design: top\n")
	b.WriteString("1. Package Pins Summary\n")
	b.WriteString("+-----+-----+\n")
	b.WriteString("| Package Pin | Pin Function | Site | Site Type | Bank | Direction | Port | Net |\n")
	b.WriteString("+-----+-----+\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("+-----+-----+\n")
	return b.String()
}

func TestParseFile(t *testing.T) {
	parser := newTestParser(t)

	pins, err := parser.ParseFile(fixture)
	require.NoError(t, err)

	// The fixture has 24 rows between the header border and the closing border;
	// the trailing "Unused Banks" table must be ignored.
	assert.Equal(t, 24, pins.Len())

	rec, ok := pins.Lookup("A1")
	require.True(t, ok, "A1 not found")
	assert.Equal(t, "IO_L1P_T0L_N0_DBC_65", rec.PinFunc)
	assert.Equal(t, "IOB_X1Y0", *rec.Site)
	assert.Equal(t, "HPIOB", *rec.SiteType)
	bank, ok := rec.BankNumber()
	assert.True(t, ok)
	assert.Equal(t, 65, bank)
	assert.Equal(t, "INOUT", *rec.Direction)
	assert.Equal(t, "led[0]", rec.PortName())
	assert.Equal(t, "led_OBUF[0]", rec.NetName())

	rec, ok = pins.Lookup("H1")
	require.True(t, ok, "H1 not found")
	assert.Equal(t, "NC", rec.PinFunc)
	assert.Nil(t, rec.Site)
	assert.Nil(t, rec.SiteType)
	assert.Nil(t, rec.Bank)
	assert.Nil(t, rec.Direction)
	assert.False(t, rec.HasPort())
	assert.False(t, rec.HasNet())

	_, ok = pins.Lookup("67")
	assert.False(t, ok, "row from a later table leaked into the pin set")
}

func TestParseScenario(t *testing.T) {
	parser := newTestParser(t)

	pins, err := parser.ParseString(table(
		"| A1 | IO_L1 | SITE1 | HP | 10 | IN | portA | netA |",
		"| B2 | NC | SITE2 |  |  |  |  |  |",
	))
	require.NoError(t, err)
	require.Equal(t, 2, pins.Len())

	records := pins.Records()
	assert.Equal(t, "A1", records[0].PackagePin)
	assert.Equal(t, "B2", records[1].PackagePin)

	b2 := records[1]
	assert.Equal(t, "SITE2", *b2.Site)
	assert.Nil(t, b2.SiteType, "blank cell must be absent, not empty")
	assert.Nil(t, b2.Bank)
	assert.Nil(t, b2.Port)
	assert.Nil(t, b2.Net)
}

func TestParseStopsAtFirstBorder(t *testing.T) {
	parser := newTestParser(t)

	input := table("| A1 | IO_L1 | S | T | 1 | IN | p | n |") +
		"| Z9 | IO_L9 | S | T | 1 | IN | p | n |\n"

	pins, err := parser.ParseString(input)
	require.NoError(t, err)
	assert.Equal(t, 1, pins.Len())
}

func TestParseEndOfInputClosesSection(t *testing.T) {
	parser := newTestParser(t)

	input := "Package Pins Summary\n+--+\n| header |\n+--+\n| A1 | IO_L1 | S | T | 1 | IN | p | n |\n"
	pins, err := parser.ParseString(input)
	require.NoError(t, err)
	assert.Equal(t, 1, pins.Len())
}

func TestParseCRLF(t *testing.T) {
	parser := newTestParser(t)

	input := strings.ReplaceAll(table("| A1 | IO_L1 | S | T | 1 | IN | p | n |"), "\n", "\r\n")
	pins, err := parser.ParseString(input)
	require.NoError(t, err)

	rec, ok := pins.Lookup("A1")
	require.True(t, ok)
	assert.Equal(t, "n", rec.NetName())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
	}{
		{
			name:    "no marker",
			input:   "+---+\n| A1 | IO_L1 | S | T | 1 | IN | p | n |\n+---+\n",
			wantErr: ErrMarkerNotFound,
		},
		{
			name:    "truncated header",
			input:   "Package Pins Summary\n+---+\n| header |\n",
			wantErr: ErrTruncatedHeader,
			line:    3,
		},
		{
			name:    "too few fields",
			input:   table("| A1 | IO_L1 | S | T | 1 | IN | p |"),
			wantErr: ErrFieldCount,
			line:    6,
		},
		{
			name:    "too many fields",
			input:   table("| A1 | IO_L1 | S | T | 1 | IN | p | n | extra |"),
			wantErr: ErrFieldCount,
			line:    6,
		},
		{
			name:    "blank line in section",
			input:   table(""),
			wantErr: ErrFieldCount,
			line:    6,
		},
		{
			name:    "missing package pin",
			input:   table("|  | IO_L1 | S | T | 1 | IN | p | n |"),
			wantErr: ErrMissingField,
			line:    6,
		},
		{
			name:    "missing pin function",
			input:   table("| A1 |  | S | T | 1 | IN | p | n |"),
			wantErr: ErrMissingField,
			line:    6,
		},
		{
			name:    "non-numeric bank",
			input:   table("| A1 | IO_L1 | S | T | X | IN | p | n |"),
			wantErr: ErrInvalidBank,
			line:    6,
		},
		{
			name: "duplicate package pin",
			input: table(
				"| A1 | IO_L1 | S | T | 1 | IN | p | n |",
				"| A1 | IO_L2 | S | T | 1 | IN | q | m |",
			),
			wantErr: ErrDuplicatePin,
			line:    7,
		},
	}

	parser := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pins, err := parser.ParseString(tt.input)
			require.Error(t, err)
			assert.Nil(t, pins, "no partial pin set on error")
			assert.ErrorIs(t, err, tt.wantErr)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	parser := newTestParser(t)

	_, err := parser.ParseFile("does/not/exist.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"| a | b |", []string{"a", "b"}},
		{"  | a |b|  trailing", []string{"a", "b"}},
		{"||", []string{""}},
		{"| | x |", []string{"", "x"}},
		{"no pipes", nil},
		{"", nil},
	}

	parser := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parser.SplitRow(tt.line)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
