package app

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clockRe    = regexp.MustCompile(`\b(?:a las?\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm|de la manana|de la tarde|de la noche)?\b`)
	relativeRe = regexp.MustCompile(`\ben\s+(\d+)\s*(minutos?|min|horas?)\b`)
	halfHourRe = regexp.MustCompile(`\ben\s+media\s+hora\b`)
	tomorrowRe = regexp.MustCompile(`\bmanana\b`)
	nowRe      = regexp.MustCompile(`\bahora\b|\bya\b|\binmediatamente\b|\blo antes posible\b`)
)

// ParsePickupTime resolves a normalized Spanish time expression relative to
// now. Returns false when the text carries no recognizable time, so the
// caller can re-ask instead of guessing.
func ParsePickupTime(text string, now time.Time) (time.Time, bool) {
	norm := normalize(text)

	if nowRe.MatchString(norm) {
		return now.Add(10 * time.Minute), true
	}
	if halfHourRe.MatchString(norm) {
		return now.Add(30 * time.Minute), true
	}
	if m := relativeRe.FindStringSubmatch(norm); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return time.Time{}, false
		}
		unit := time.Minute
		if strings.HasPrefix(m[2], "hora") {
			unit = time.Hour
		}
		return now.Add(time.Duration(n) * unit), true
	}

	m := clockRe.FindStringSubmatch(norm)
	if m == nil {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return time.Time{}, false
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return time.Time{}, false
		}
	}

	switch m[3] {
	case "pm", "de la tarde", "de la noche":
		if hour < 12 {
			hour += 12
		}
	case "am", "de la manana":
		if hour == 12 {
			hour = 0
		}
	default:
		// Bare small hours default to the next plausible slot: "a las 3"
		// spoken in the afternoon means 3 PM.
		if hour <= 11 && hour+12 > now.Hour() && hour <= now.Hour() {
			hour += 12
		}
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	// "de la manana" is an AM marker, not the word for tomorrow.
	dayWords := strings.ReplaceAll(norm, "de la manana", "")
	if tomorrowRe.MatchString(dayWords) || !at.After(now) {
		at = at.Add(24 * time.Hour)
	}
	return at, true
}
