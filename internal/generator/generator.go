// Package generator writes programs that answer, for every number below 10^N,
// how many digits it has, what each digit is and what it reads backwards.
package generator

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/cockroachdb/errors"

	"shireesh.com/switchgen/internal/dialect"
	"shireesh.com/switchgen/internal/digits"
	"shireesh.com/switchgen/internal/locale"
)

const (
	// crlf ends every generated branch line unless configured otherwise.
	crlf = "\r\n"

	caseIndent = 8
	bodyIndent = 4

	// MaxDigits is the largest N for which 10^N fits in a uint64.
	MaxDigits = 19

	branchesMarker = "\x00branches\x00"
	checkEvery     = 4096
)

// ErrDigitsOverflow is returned when 10^N does not fit in a uint64.
var ErrDigitsOverflow = errors.New("digit count too large")

// Options configures a Generator.
type Options struct {
	Lang   dialect.Lang
	Digits int
	// Phrases defaults to the English phrasebook.
	Phrases *locale.Phrasebook
	// LineEnding defaults to "\r\n".
	LineEnding string
}

// Stats describes a finished Emit.
type Stats struct {
	Branches uint64
	Bytes    int64
}

// Generator renders one program.
type Generator struct {
	syntax  dialect.Syntax
	digits  int
	limit   uint64
	phrases *locale.Phrasebook
	eol     string
	// places[j-1] is the name of position j
	places []string
}

// New returns a Generator for opts.
func New(opts Options) (*Generator, error) {
	if opts.Digits < 0 || opts.Digits > MaxDigits {
		return nil, errors.WithHintf(
			errors.Wrapf(ErrDigitsOverflow, "%d", opts.Digits),
			"use at most %d digits", MaxDigits)
	}
	phrases := opts.Phrases
	if phrases == nil {
		var err error
		if phrases, err = locale.New(""); err != nil {
			return nil, err
		}
	}
	eol := opts.LineEnding
	if eol == "" {
		eol = crlf
	}

	limit := uint64(1)
	for i := 0; i < opts.Digits; i++ {
		limit *= 10
	}
	labels := phrases.Labels()
	places := make([]string, 0, max(opts.Digits, 1))
	for j := 1; j <= max(opts.Digits, 1); j++ {
		places = append(places, digits.PlaceName(j, labels))
	}
	return &Generator{
		syntax:  opts.Lang.Syntax(),
		digits:  opts.Digits,
		limit:   limit,
		phrases: phrases,
		eol:     eol,
		places:  places,
	}, nil
}

// Count returns the number of branches the program will have, 10^N - 1.
func (g *Generator) Count() uint64 {
	return g.limit - 1
}

// Branch returns the lines of the branch for i, indented relative to its case label.
func (g *Generator) Branch(i uint64) []string {
	s := strconv.FormatUint(i, 10)
	n := digits.Len(i)
	lines := make([]string, 0, n+4)
	lines = append(lines,
		g.syntax.Case(i),
		pad(g.syntax.Print(g.phrases.DigitCount(n)), bodyIndent))
	for j := 1; j <= n; j++ {
		lines = append(lines, pad(g.syntax.Print(g.phrases.PlaceDigit(g.place(j), digits.At(s, j))), bodyIndent))
	}
	lines = append(lines, pad(g.syntax.Print(g.phrases.Reversed(digits.Reverse(i))), bodyIndent))
	if g.syntax.TerminatorInBody {
		lines = append(lines, pad(g.syntax.Terminator, bodyIndent))
	} else {
		lines = append(lines, g.syntax.Terminator)
	}
	return lines
}

func (g *Generator) place(j int) string {
	if j <= len(g.places) {
		return g.places[j-1]
	}
	return digits.PlaceName(j, g.phrases.Labels())
}

// Emit writes the whole program to w, one branch at a time.
func (g *Generator) Emit(ctx context.Context, w io.Writer) (Stats, error) {
	head, tail, err := g.skeleton()
	if err != nil {
		return Stats{}, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriterSize(cw, 64<<10)
	var stats Stats
	if _, err := bw.WriteString(head); err != nil {
		return stats, errors.Wrap(err, "write header")
	}
	for i := uint64(1); i < g.limit; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		for _, line := range g.Branch(i) {
			if _, err := bw.WriteString(g.format(line)); err != nil {
				return stats, errors.Wrapf(err, "write branch %d", i)
			}
		}
		stats.Branches++
	}
	if _, err := bw.WriteString(tail); err != nil {
		return stats, errors.Wrap(err, "write footer")
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Wrap(err, "flush")
	}
	stats.Bytes = cw.n
	return stats, nil
}

// skeleton renders the program template around the branches and splits it
// there. The result is trimmed as if the whole text had been.
func (g *Generator) skeleton() (head, tail string, err error) {
	tmpl, err := g.syntax.Skeleton()
	if err != nil {
		return "", "", err
	}
	out, err := mustache.Render(tmpl, map[string]string{
		"prompt":   g.syntax.Quote(g.phrases.InputPrompt(g.digits)),
		"branches": branchesMarker,
	})
	if err != nil {
		return "", "", errors.Wrapf(err, "render %s skeleton", g.syntax.Name)
	}
	head, tail, ok := strings.Cut(out, branchesMarker)
	if !ok {
		return "", "", errors.Newf("%s skeleton has no branches section", g.syntax.Name)
	}
	return strings.TrimLeft(head, " \t\r\n"), strings.TrimRight(tail, " \t\r\n"), nil
}

func (g *Generator) format(line string) string {
	return pad(line, caseIndent) + g.eol
}

func pad(s string, n int) string {
	return strings.Repeat(" ", n) + s
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
