package domain

import "strconv"

// Ratio formats a/b to two decimal places, guarding against division by
// zero: a zero numerator is "0.00" and a zero denominator returns the
// numerator itself.
func Ratio(a, b float64) string {
	if a == 0 {
		return "0.00"
	}
	if b == 0 {
		return strconv.FormatFloat(a, 'f', 2, 64)
	}
	return strconv.FormatFloat(a/b, 'f', 2, 64)
}

// Percent formats a's share of a+b as a percentage with two decimal
// places. A zero numerator is "0.00%" and a zero denominator "100.00%".
func Percent(a, b float64) string {
	if a == 0 {
		return "0.00%"
	}
	if b == 0 {
		return "100.00%"
	}
	return strconv.FormatFloat(a/(a+b)*100, 'f', 2, 64) + "%"
}
