package parse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d+):([0-5]?\d)(?:\.(\d+))?$`)

// MaxClockMinutes bounds the minutes part of "m:ss" input.
const MaxClockMinutes = 600

// Seconds parses a brew time entered as "m:ss", "m:ss.f" or plain seconds ("27", "27.5", "27s").
func Seconds(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "s")
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if m := clockRe.FindStringSubmatch(s); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("unable to parse duration %q: %w", raw, err)
		}
		if minutes > MaxClockMinutes {
			return 0, fmt.Errorf("duration %q exceeds %d minutes", raw, MaxClockMinutes)
		}
		seconds, _ := strconv.Atoi(m[2])
		total := float64(minutes*60 + seconds)
		if m[3] != "" {
			frac, err := strconv.ParseFloat("0."+m[3], 64)
			if err != nil {
				return 0, fmt.Errorf("unable to parse duration %q: %w", raw, err)
			}
			total += frac
		}
		return total, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("unable to parse duration %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return v, nil
}

// Clock formats seconds as "m:ss".
func Clock(seconds float64) string {
	total := int(math.Round(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
