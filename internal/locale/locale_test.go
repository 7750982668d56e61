package locale

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"shireesh.com/switchgen/internal/digits"
)

func TestNewEnglish(t *testing.T) {
	p, err := New("en")
	if err != nil {
		t.Fatal(err)
	}
	want := digits.Labels{
		Ones:           "ones",
		Tens:           "tens",
		Hundreds:       "hundreds",
		Thousands:      "thousands",
		TenThousand:    "ten-thousand",
		HundredMillion: "hundred-million",
		Separator:      " ",
	}
	if diff := cmp.Diff(want, p.Labels()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := p.Tag().String(); got != "en" {
		t.Errorf("Tag() = %v, want en", got)
	}
}

func TestNewChinese(t *testing.T) {
	p, err := New("zh")
	if err != nil {
		t.Fatal(err)
	}
	want := digits.Labels{
		Ones:           "个",
		Tens:           "十",
		Hundreds:       "百",
		Thousands:      "千",
		TenThousand:    "万",
		HundredMillion: "亿",
	}
	if diff := cmp.Diff(want, p.Labels()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFallback(t *testing.T) {
	for _, locale := range []string{"", "fr", "de-CH"} {
		t.Run(locale, func(t *testing.T) {
			p, err := New(locale)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.Labels().Ones; got != "ones" {
				t.Errorf("Ones = %q, want %q", got, "ones")
			}
		})
	}
}

func TestNewInvalidLocale(t *testing.T) {
	if _, err := New("not a locale!"); err == nil {
		t.Error("New() expected error for malformed locale")
	}
}

func TestPhrases(t *testing.T) {
	for _, test := range []struct {
		locale string
		want   []string
	}{
		{
			locale: "en",
			want: []string{
				"is a 3-digit number",
				"ones place is: 3",
				"reversed is: 321",
				"Please enter a positive integer of at most 5 digits:",
			},
		},
		{
			locale: "zh",
			want: []string{
				"是个3位数",
				"个位数是：3",
				"倒过来是：321",
				"请输入一个不多于5位的正整数：",
			},
		},
	} {
		t.Run(test.locale, func(t *testing.T) {
			p, err := New(test.locale)
			if err != nil {
				t.Fatal(err)
			}
			got := []string{
				p.DigitCount(3),
				p.PlaceDigit(p.Labels().Ones, '3'),
				p.Reversed("321"),
				p.InputPrompt(5),
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPhrasesMemoized(t *testing.T) {
	p, err := New("en")
	if err != nil {
		t.Fatal(err)
	}
	first := p.PlaceDigit("tens", '7')
	second := p.PlaceDigit("tens", '7')
	if first != second || len(p.places) != 1 {
		t.Errorf("PlaceDigit not memoized: %q, %q, %d entries", first, second, len(p.places))
	}
	if got := p.PlaceDigit("tens", '8'); got != "tens place is: 8" {
		t.Errorf("PlaceDigit() = %q", got)
	}
}
