package service

import (
	"fmt"
	"strings"
)

// AllSeasonCodes builds the comma-separated list of every season code
// from Y1S1 through the given current season, four seasons per year.
// The caller guarantees current is a well-formed code (config validates
// it), so the walk always terminates exactly on it.
func AllSeasonCodes(current string) string {
	var codes []string
	year, season := 1, 1

	for {
		code := fmt.Sprintf("Y%dS%d", year, season)
		codes = append(codes, code)
		if code == current {
			break
		}
		if season < 4 {
			season++
		} else {
			season = 1
			year++
		}
	}

	return strings.Join(codes, ",")
}
