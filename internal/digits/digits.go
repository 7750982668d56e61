// Package digits names decimal place values and takes numbers apart digit by digit.
package digits

import (
	"strconv"
	"strings"
)

// Labels is the fixed set of place-value names for one locale.
type Labels struct {
	Ones      string
	Tens      string
	Hundreds  string
	Thousands string
	// TenThousand is the unit repeated every 4th order of magnitude (万).
	TenThousand string
	// HundredMillion is the unit repeated every 8th order of magnitude (亿).
	HundredMillion string
	// Separator joins the parts of a compound name.
	Separator string
}

// PlaceName returns the name of the 1-based digit position j.
//
// Position 1 is the ones place. Positions above 4 carry a ten-thousand unit
// and positions above 8 a hundred-million unit, so position 6 reads
// "tens ten-thousand" (十万) and position 13 "ten-thousand hundred-million" (万亿).
func PlaceName(j int, labels Labels) string {
	base := [4]string{"", labels.Tens, labels.Hundreds, labels.Thousands}

	var units []string
	n := j
	for n > 8 {
		units = append([]string{labels.HundredMillion}, units...)
		n -= 8
	}
	for n > 4 {
		units = append([]string{labels.TenThousand}, units...)
		n -= 4
	}

	parts := units
	if b := base[n-1]; b != "" {
		parts = append([]string{b}, units...)
	}
	if len(parts) == 0 {
		return labels.Ones
	}
	return strings.Join(parts, labels.Separator)
}

// Len returns the number of decimal digits in n. Len(0) is 0.
func Len(n uint64) int {
	res := 0
	for div := uint64(1); n/div != 0; div *= 10 {
		res++
		// 10^20 does not fit in a uint64
		if res == 20 {
			break
		}
	}
	return res
}

// Reverse returns the decimal text of n with its characters in reverse order.
func Reverse(n uint64) string {
	s := []byte(strconv.FormatUint(n, 10))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}

// At returns the j-th digit of s counting from the right, starting at 1.
func At(s string, j int) byte {
	return s[len(s)-j]
}
