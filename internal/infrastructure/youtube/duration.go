package youtube

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRE = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseDuration converts an ISO-8601 duration such as PT3M45.5S or
// P1DT2H3M4S to whole seconds. Fractional seconds round up so a reported
// length never understates playback. Malformed input yields 0.
func ParseDuration(iso string) int {
	m := isoDurationRE.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil {
		return 0
	}
	days := atoi(m[1])
	hours := atoi(m[2])
	minutes := atoi(m[3])

	var seconds float64
	if m[4] != "" {
		f, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return 0
		}
		seconds = math.Ceil(f)
	}
	return days*86400 + hours*3600 + minutes*60 + int(seconds)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
