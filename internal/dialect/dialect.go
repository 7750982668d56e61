// Package dialect describes the target languages a program can be generated in.
package dialect

import (
	"embed"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.mustache
var templatesFS embed.FS

// ErrUnsupportedLanguage is returned for a language token that names no dialect.
var ErrUnsupportedLanguage = errors.New("language is not supported")

// Lang is a target language.
type Lang int

const (
	C Lang = iota
	CC
	Rust
)

// Syntax is the per-language part of a generated program: how a case is
// labelled, how a message is printed and how a branch ends.
type Syntax struct {
	Name string
	// Ext is the conventional source file extension, without the dot.
	Ext string

	caseLabel string
	print     string
	escape    *strings.Replacer

	// Terminator closes a branch.
	Terminator string
	// TerminatorInBody reports whether Terminator is indented like the
	// branch body rather than like the case label.
	TerminatorInBody bool

	template string
}

var syntaxes = [...]Syntax{
	C: {
		Name:             "c",
		Ext:              "c",
		caseLabel:        "case %d:",
		print:            `printf("%s\r\n");`,
		escape:           strings.NewReplacer(`\`, `\\`, `"`, `\"`, `%`, `%%`),
		Terminator:       "break;",
		TerminatorInBody: true,
		template:         "templates/c.mustache",
	},
	CC: {
		Name:             "cc",
		Ext:              "cc",
		caseLabel:        "case %d:",
		print:            `cout << "%s" << endl;`,
		escape:           strings.NewReplacer(`\`, `\\`, `"`, `\"`),
		Terminator:       "break;",
		TerminatorInBody: true,
		template:         "templates/cc.mustache",
	},
	Rust: {
		Name:       "rust",
		Ext:        "rs",
		caseLabel:  "%d => {",
		print:      `println!("%s");`,
		escape:     strings.NewReplacer(`\`, `\\`, `"`, `\"`, `{`, `{{`, `}`, `}}`),
		Terminator: "}",
		template:   "templates/rust.mustache",
	},
}

var tokens = map[string]Lang{
	"c":    C,
	"cc":   CC,
	"c++":  CC,
	"cpp":  CC,
	"rust": Rust,
	"rs":   Rust,
}

// ParseLang matches a language token case-insensitively.
func ParseLang(token string) (Lang, error) {
	l, ok := tokens[strings.ToLower(token)]
	if !ok {
		return 0, errors.WithHint(
			errors.Wrapf(ErrUnsupportedLanguage, "%q", token),
			"choose one of "+Names())
	}
	return l, nil
}

// Langs returns every supported language.
func Langs() []Lang {
	return []Lang{C, CC, Rust}
}

// Names lists the primary token of every language, e.g. "c, cc, rust".
func Names() string {
	names := make([]string, 0, len(syntaxes))
	for _, l := range Langs() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

func (l Lang) String() string {
	if l < 0 || int(l) >= len(syntaxes) {
		return fmt.Sprintf("Lang(%d)", int(l))
	}
	return syntaxes[l].Name
}

// Syntax returns the syntax record for l.
func (l Lang) Syntax() Syntax {
	return syntaxes[l]
}

// Case returns the label of the branch for i.
func (s Syntax) Case(i uint64) string {
	return fmt.Sprintf(s.caseLabel, i)
}

// Print returns a statement printing msg followed by a newline.
func (s Syntax) Print(msg string) string {
	return fmt.Sprintf(s.print, s.Quote(msg))
}

// Quote escapes msg for use inside a string literal passed to the print statement.
func (s Syntax) Quote(msg string) string {
	return s.escape.Replace(msg)
}

// Skeleton returns the mustache template of the whole program.
func (s Syntax) Skeleton() (string, error) {
	b, err := templatesFS.ReadFile(s.template)
	if err != nil {
		return "", errors.Wrapf(err, "read %s template", s.Name)
	}
	return string(b), nil
}
