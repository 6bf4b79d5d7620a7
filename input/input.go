// Package input reads triangular fuzzy numbers from interactive or
// scripted text streams.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/softsets/fuzzyset/tfn"
)

// ErrClosed is returned when the stream ends before a valid number is read.
var ErrClosed = errors.New("input stream closed")

// Reader reads triangular fuzzy numbers line by line from a single
// buffered stream. Construct one Reader per stream and reuse it for every
// read: the underlying scanner reads ahead, so wrapping the same stream
// twice would drop buffered lines.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// ReadNumber prompts on w for a triangular fuzzy number named name and
// reads lines until one parses. A line holds three numbers separated by
// spaces; they are sorted before use, so any order works. Parse and
// validation failures reprompt rather than fail.
func (s *Reader) ReadNumber(w io.Writer, name string) (tfn.Number, error) {
	for {
		fmt.Fprintf(w, "%s (three numbers, e.g. 1 2 3): ", name)

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return tfn.Number{}, err
			}

			return tfn.Number{}, ErrClosed
		}

		values, err := parseTriple(s.scanner.Text())
		if err != nil {
			fmt.Fprintf(w, "%v\n", err)
			continue
		}

		sort.Float64s(values)

		number, err := tfn.FromSlice(values)
		if err != nil {
			fmt.Fprintf(w, "%v\n", err)
			continue
		}

		return number, nil
	}
}

func parseTriple(line string) ([]float64, error) {
	fields := strings.Fields(line)

	if len(fields) != 3 {
		return nil, fmt.Errorf("expected 3 numbers but found %d", len(fields))
	}

	values := make([]float64, len(fields))

	for idx, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", field)
		}

		values[idx] = value
	}

	return values, nil
}
