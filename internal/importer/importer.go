package importer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// Format identifies a supported bank export layout.
type Format string

const (
	// FormatUmpqua is the headered checking export with separate Debit
	// and Credit columns.
	FormatUmpqua Format = "umpqua"
	// FormatFNBO is the fixed three-column card export (Post Date,
	// Amount, Description, no header).
	FormatFNBO Format = "fnbo"
)

var (
	// ErrMalformedInput marks input that cannot be read as CSV at all.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnparsableAmount marks a row whose amount field does not parse
	// as a decimal after cleaning.
	ErrUnparsableAmount = errors.New("unparsable amount")
	// ErrUnknownFormat marks a file that matches no supported layout.
	ErrUnknownFormat = errors.New("unknown statement format")
)

// Parser converts one institution's CSV export into normalized bank
// transactions.
type Parser interface {
	Parse(r io.Reader) (*Result, error)
	Format() Format
}

// Result is the outcome of parsing one file.
type Result struct {
	Transactions []model.BankTransaction
	Skipped      int        // rows dropped by institution rules (Pending, PAYMENT)
	RowErrors    []RowError // rows that failed to normalize
}

// RowError records a row that could not be normalized. Line is 1-based
// within the file, Fields the raw values for operator diagnosis.
type RowError struct {
	Line   int
	Fields []string
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Registry holds parsers by format.
type Registry struct {
	parsers map[Format]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[Format]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	if _, ok := r.parsers[p.Format()]; ok {
		panic("duplicate parser format: " + string(p.Format()))
	}
	r.parsers[p.Format()] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format Format) Parser {
	return r.parsers[format]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&UmpquaParser{})
	r.Register(&FNBOParser{})
	return r
}

// umpquaHeaderToken begins the header line of an Umpqua checking export.
// Brittle: any exporter change breaks detection.
const umpquaHeaderToken = "Account Number"

// fnboFilenamePrefix is how FNBO's exporter names downloaded files.
const fnboFilenamePrefix = "Transactions"

// Detect picks the export format for an uploaded file from its original
// filename and the first bytes of its content. The filename hint is
// checked first, then the header sniff.
func Detect(filename string, head []byte) (Format, error) {
	if strings.HasPrefix(filepath.Base(filename), fnboFilenamePrefix) {
		return FormatFNBO, nil
	}

	line := firstLine(head)
	if line == "" {
		return "", fmt.Errorf("%w: empty file", ErrUnknownFormat)
	}
	if strings.HasPrefix(line, umpquaHeaderToken) || looksHeadered(line) {
		return FormatUmpqua, nil
	}
	return FormatFNBO, nil
}

// looksHeadered reports whether the first line names the checking
// export's columns. Newer exports drop the "Account Number" lead column,
// so the sniff accepts either shape. FNBO files carry no header, and a
// data row never contains both column names.
func looksHeadered(line string) bool {
	return strings.Contains(line, umpquaColDebit) && strings.Contains(line, umpquaColCredit)
}

// firstLine returns the first line of data with any UTF-8 BOM stripped.
func firstLine(head []byte) string {
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	return strings.TrimRight(string(head), "\r")
}

// stripBOM removes a leading UTF-8 byte-order mark, which Windows bank
// exporters like to prepend.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, []byte("\xef\xbb\xbf")) {
		br.Discard(3)
	}
	return br
}

// dateLayouts are the date shapes seen across exports: US M/D/YYYY and
// already-ISO.
var dateLayouts = []string{"2006-01-02", "1/2/2006"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrMalformedInput, s)
}
