// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/wavefront/renumber"
)

var (
	// ErrBadLine means a line is not two integer fields.
	ErrBadLine = errors.New("edgelist: malformed line")

	// ErrNoPairs means the input held no pairs at all.
	ErrNoPairs = errors.New("edgelist: no pairs in input")
)

// Pair is one adjacency between external vertex ids, directed as written.
type Pair struct {
	Src renumber.ExternalID
	Dst renumber.ExternalID
}

type config struct {
	comment string
}

// Option adjusts parsing behaviour.
type Option func(*config)

// WithComment sets the comment prefix (default "#"). Everything from the
// prefix to the end of the line is dropped; an empty prefix disables
// stripping entirely.
func WithComment(prefix string) Option {
	return func(c *config) { c.comment = prefix }
}

// Parse reads pairs until EOF.
//
// Complexity: O(input bytes), one slice of pairs.
func Parse(r io.Reader, opts ...Option) ([]Pair, error) {
	cfg := config{comment: "#"}
	for _, opt := range opts {
		opt(&cfg)
	}

	var pairs []Pair
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if cfg.comment != "" {
			if i := strings.Index(text, cfg.comment); i >= 0 {
				text = text[:i]
			}
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return unicode.IsSpace(r) || r == ','
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %d fields: %w", line, len(fields), ErrBadLine)
		}
		src, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, fields[0], ErrBadLine)
		}
		dst, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, fields[1], ErrBadLine)
		}
		pairs = append(pairs, Pair{Src: src, Dst: dst})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	return pairs, nil
}

// ParseFile opens path and parses its contents.
func ParseFile(path string, opts ...Option) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	pairs, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}
