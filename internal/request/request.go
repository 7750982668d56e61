// Package request parses the operator's generation request.
package request

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"shireesh.com/switchgen/internal/dialect"
)

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrInvalidDigits    = errors.New("invalid digit count")
)

// Request is what to generate: a target language and the number of digits of
// the largest number handled.
type Request struct {
	Lang   dialect.Lang
	Digits int
}

// Parse reads a "<language> <digits>" line, e.g. "c 5".
func Parse(line string) (Request, error) {
	args := strings.Fields(line)
	if len(args) != 2 {
		return Request{}, errors.WithHint(
			errors.Wrapf(ErrInvalidArguments, "got %d values", len(args)),
			"enter a language and a digit count, e.g. c 5")
	}
	lang, err := dialect.ParseLang(args[0])
	if err != nil {
		return Request{}, err
	}
	n, err := ParseDigits(args[1])
	if err != nil {
		return Request{}, err
	}
	return Request{Lang: lang, Digits: n}, nil
}

// ParseDigits parses a non-negative decimal digit count.
func ParseDigits(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.WithHint(
			errors.Mark(errors.Wrapf(err, "%s %q", ErrInvalidDigits, s), ErrInvalidDigits),
			"the digit count must be a whole number, e.g. 3")
	}
	return int(n), nil
}
