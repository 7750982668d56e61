package digits

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var chinese = Labels{
	Ones:           "个",
	Tens:           "十",
	Hundreds:       "百",
	Thousands:      "千",
	TenThousand:    "万",
	HundredMillion: "亿",
}

var english = Labels{
	Ones:           "ones",
	Tens:           "tens",
	Hundreds:       "hundreds",
	Thousands:      "thousands",
	TenThousand:    "ten-thousand",
	HundredMillion: "hundred-million",
	Separator:      " ",
}

func TestPlaceNameChinese(t *testing.T) {
	want := []string{
		"个", "十", "百", "千",
		"万", "十万", "百万", "千万",
		"亿", "十亿", "百亿", "千亿",
		"万亿", "十万亿", "百万亿", "千万亿",
		"亿亿", "十亿亿",
	}
	var got []string
	for j := 1; j <= len(want); j++ {
		got = append(got, PlaceName(j, chinese))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceNameEnglish(t *testing.T) {
	for _, test := range []struct {
		j    int
		want string
	}{
		{1, "ones"},
		{2, "tens"},
		{3, "hundreds"},
		{4, "thousands"},
		{5, "ten-thousand"},
		{6, "tens ten-thousand"},
		{8, "thousands ten-thousand"},
		{9, "hundred-million"},
		{12, "thousands hundred-million"},
		{13, "ten-thousand hundred-million"},
		{17, "hundred-million hundred-million"},
	} {
		t.Run(strconv.Itoa(test.j), func(t *testing.T) {
			if got := PlaceName(test.j, english); got != test.want {
				t.Errorf("PlaceName(%d) = %q, want %q", test.j, got, test.want)
			}
		})
	}
}

func TestPlaceNameGroups(t *testing.T) {
	base := map[string]bool{"个": true, "十": true, "百": true, "千": true}
	for j := 1; j <= 4; j++ {
		if got := PlaceName(j, chinese); !base[got] {
			t.Errorf("PlaceName(%d) = %q, not a base label", j, got)
		}
	}
	for j := 5; j <= 8; j++ {
		want := PlaceName(j-4, chinese) + "万"
		if j == 5 {
			want = "万"
		}
		if got := PlaceName(j, chinese); got != want {
			t.Errorf("PlaceName(%d) = %q, want %q", j, got, want)
		}
	}
	for j := 9; j <= 12; j++ {
		want := PlaceName(j-8, chinese) + "亿"
		if j == 9 {
			want = "亿"
		}
		if got := PlaceName(j, chinese); got != want {
			t.Errorf("PlaceName(%d) = %q, want %q", j, got, want)
		}
	}
}

func TestLen(t *testing.T) {
	for _, n := range []uint64{1, 9, 10, 11, 99, 100, 123, 999, 1000, 12345, 1 << 32, 9999999999999999999, math.MaxUint64} {
		want := len(strconv.FormatUint(n, 10))
		if got := Len(n); got != want {
			t.Errorf("Len(%d) = %d, want %d", n, got, want)
		}
	}
	if got := Len(0); got != 0 {
		t.Errorf("Len(0) = %d, want 0", got)
	}
}

func TestReverse(t *testing.T) {
	for _, test := range []struct {
		n    uint64
		want string
	}{
		{1, "1"},
		{10, "01"},
		{123, "321"},
		{1221, "1221"},
		{120, "021"},
		{math.MaxUint64, "51615590737044764481"},
	} {
		got := Reverse(test.n)
		if got != test.want {
			t.Errorf("Reverse(%d) = %q, want %q", test.n, got, test.want)
		}
	}
}

func TestReverseRoundTrip(t *testing.T) {
	for _, n := range []uint64{7, 12, 121, 4004, 98765, 1234321} {
		s := strconv.FormatUint(n, 10)
		once := Reverse(n)
		back, err := strconv.ParseUint(once, 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		// trailing zeros would be lost when reading the reversal back as a number
		if got := Reverse(back); got != s {
			t.Errorf("Reverse(Reverse(%d)) = %q, want %q", n, got, s)
		}
	}
}

func TestAt(t *testing.T) {
	s := "123"
	got := []byte{At(s, 1), At(s, 2), At(s, 3)}
	if diff := cmp.Diff([]byte("321"), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
