// Package locale holds the fixed place-value labels and the phrases printed by
// generated programs, in English and Chinese.
package locale

import (
	"embed"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"shireesh.com/switchgen/internal/digits"
)

//go:embed active.*.toml
var localeFS embed.FS

// Default is used when no locale is configured or the requested one has no catalog.
var Default = language.English

// Phrasebook renders branch phrases for one locale.
//
// Digit-count and place lines take finitely many values and are memoized;
// a Phrasebook is not safe for concurrent use.
type Phrasebook struct {
	localizer *i18n.Localizer
	tag       language.Tag
	labels    digits.Labels

	counts map[int]string
	places map[string]string
}

// New loads the embedded catalogs and returns a Phrasebook for locale.
// Locales without a catalog fall back to English.
func New(locale string) (*Phrasebook, error) {
	bundle := i18n.NewBundle(Default)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range []string{"active.en.toml", "active.zh.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, errors.Wrapf(err, "load %s", file)
		}
	}

	langs := []string{Default.String()}
	if locale != "" {
		if _, err := language.Parse(locale); err != nil {
			return nil, errors.WithHint(errors.Wrapf(err, "invalid locale %q", locale), "use a BCP 47 tag such as en or zh")
		}
		langs = append([]string{locale}, langs...)
	}

	p := &Phrasebook{
		localizer: i18n.NewLocalizer(bundle, langs...),
		counts:    map[int]string{},
		places:    map[string]string{},
	}
	_, tag, err := p.localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: "PlaceOnes"})
	if err != nil {
		return nil, errors.Wrap(err, "localize place labels")
	}
	p.tag = tag

	p.labels = digits.Labels{Separator: separator(tag)}
	for id, dst := range map[string]*string{
		"PlaceOnes":          &p.labels.Ones,
		"PlaceTens":          &p.labels.Tens,
		"PlaceHundreds":      &p.labels.Hundreds,
		"PlaceThousands":     &p.labels.Thousands,
		"UnitTenThousand":    &p.labels.TenThousand,
		"UnitHundredMillion": &p.labels.HundredMillion,
	} {
		if *dst, err = p.localize(id, nil); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Chinese place names are written without spaces between their parts.
func separator(tag language.Tag) string {
	if base, _ := tag.Base(); base.String() == "zh" {
		return ""
	}
	return " "
}

// Tag reports the language the phrases are rendered in.
func (p *Phrasebook) Tag() language.Tag { return p.tag }

// Labels returns the place-value labels for the locale.
func (p *Phrasebook) Labels() digits.Labels { return p.labels }

// DigitCount renders the line stating that a number has n digits.
func (p *Phrasebook) DigitCount(n int) string {
	if s, ok := p.counts[n]; ok {
		return s
	}
	s := p.mustLocalize("DigitCount", map[string]any{"Count": n})
	p.counts[n] = s
	return s
}

// PlaceDigit renders the line pairing a place name with its digit.
func (p *Phrasebook) PlaceDigit(place string, digit byte) string {
	key := place + "\x00" + string(digit)
	if s, ok := p.places[key]; ok {
		return s
	}
	s := p.mustLocalize("PlaceDigit", map[string]any{"Place": place, "Digit": string(digit)})
	p.places[key] = s
	return s
}

// Reversed renders the line giving the reversed decimal text.
func (p *Phrasebook) Reversed(s string) string {
	return p.mustLocalize("Reversed", map[string]any{"Reversed": s})
}

// InputPrompt renders the message a generated program prints before reading its input.
func (p *Phrasebook) InputPrompt(n int) string {
	return p.mustLocalize("InputPrompt", map[string]any{"Digits": strconv.Itoa(n)})
}

func (p *Phrasebook) localize(id string, data map[string]any) (string, error) {
	msg, err := p.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return "", errors.Wrapf(err, "localize %s", id)
	}
	return msg, nil
}

// The catalogs are embedded and checked by New, so a failure here is a bug.
func (p *Phrasebook) mustLocalize(id string, data map[string]any) string {
	msg, err := p.localize(id, data)
	if err != nil {
		panic(err)
	}
	return msg
}
