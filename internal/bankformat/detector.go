package bankformat

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Detector holds the ordered parser registry. Registration order is
// detection priority: the first parser whose header matcher succeeds wins.
type Detector struct {
	parsers []Parser
}

// NewDetector returns a detector with all supported bank dialects
// registered.
func NewDetector() *Detector {
	return &Detector{
		parsers: []Parser{
			NewBarclaysParser(),
			NewRevolutParser(),
			NewMonzoParser(),
			NewSantanderParser(),
		},
	}
}

// Register appends a parser to the registry.
func (d *Detector) Register(p Parser) {
	d.parsers = append(d.parsers, p)
}

// Parsers returns the registered parsers in priority order.
func (d *Detector) Parsers() []Parser {
	out := make([]Parser, len(d.parsers))
	copy(out, d.parsers)
	return out
}

// Detect reads only the header row of r and returns the first parser that
// recognizes it. The detector keeps no state between calls, so repeated
// detection of the same header always yields the same parser. The caller
// must re-open the file before parsing; Detect consumes the header.
func (d *Detector) Detect(r io.Reader) (Parser, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	for _, p := range d.parsers {
		if p.CanParse(header) {
			return p, nil
		}
	}
	return nil, ErrFormatNotRecognized
}
