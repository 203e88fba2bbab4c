package chatbot

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = map[string]time.Month{
	"enero": 1, "ene": 1,
	"febrero": 2, "feb": 2,
	"marzo": 3, "mar": 3,
	"abril": 4, "abr": 4,
	"mayo": 5, "may": 5,
	"junio": 6, "jun": 6,
	"julio": 7, "jul": 7,
	"agosto": 8, "ago": 8,
	"septiembre": 9, "sep": 9, "set": 9,
	"octubre": 10, "oct": 10,
	"noviembre": 11, "nov": 11,
	"diciembre": 12, "dic": 12,
}

var (
	dayMonthRe   = regexp.MustCompile(`(\d{1,2})\s+de\s+([a-záéíóúñ]+)`)
	weekdayDayRe = regexp.MustCompile(`(lunes|martes|miercoles|miércoles|jueves|viernes|sabado|sábado|domingo)\s+(\d{1,2})`)
	numericRe    = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?`)
	isoRe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ResolveDate extracts a date from free text relative to now. Rules run in a
// fixed order, first match wins; the stricter forms go first so space codes
// like "A-002" are never misread as dates. Returns "" when nothing matches.
func ResolveDate(text string, now time.Time) string {
	t := strings.ToLower(text)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Relative keywords. "pasado mañana" must win over plain "mañana".
	if strings.Contains(t, "pasado mañana") || strings.Contains(t, "pasado manana") {
		return today.AddDate(0, 0, 2).Format("2006-01-02")
	}
	if strings.Contains(t, "mañana") || strings.Contains(t, "manana") {
		return today.AddDate(0, 0, 1).Format("2006-01-02")
	}
	if strings.Contains(t, "hoy") {
		return today.Format("2006-01-02")
	}

	// Exact YYYY-MM-DD token.
	for _, token := range strings.Fields(strings.ReplaceAll(t, "/", "-")) {
		if !isoRe.MatchString(token) {
			continue
		}
		if d, err := time.Parse("2006-01-02", token); err == nil && d.Year() >= 2000 && d.Year() <= 2100 {
			return d.Format("2006-01-02")
		}
	}

	// "29 de enero": current year, rolled forward a year when already past.
	if m := dayMonthRe.FindStringSubmatch(t); m != nil {
		day, _ := strconv.Atoi(m[1])
		if mo, ok := months[foldAccents(m[2])]; ok {
			if d, valid := makeDate(today.Year(), mo, day); valid {
				if d.Before(today) {
					if rolled, ok2 := makeDate(today.Year()+1, mo, day); ok2 {
						d = rolled
					}
				}
				return d.Format("2006-01-02")
			}
		}
	}

	// "miércoles 28": this month, rolled to the next when already past.
	if m := weekdayDayRe.FindStringSubmatch(t); m != nil {
		day, _ := strconv.Atoi(m[2])
		if d, valid := makeDate(today.Year(), today.Month(), day); valid {
			if d.Before(today) {
				year, month := today.Year(), today.Month()+1
				if today.Month() == time.December {
					year, month = today.Year()+1, time.January
				}
				if rolled, ok := makeDate(year, month, day); ok {
					d = rolled
				}
			}
			return d.Format("2006-01-02")
		}
	}

	// DD/MM[/YY[YY]] or DD-MM[-YY[YY]], skipped when glued to letters so
	// alphanumeric space codes ("A010", "A-002") never parse as dates.
	for _, loc := range numericRe.FindAllStringSubmatchIndex(t, -1) {
		if adjacentToWord(t, loc[0], loc[1]) {
			continue
		}
		day, _ := strconv.Atoi(t[loc[2]:loc[3]])
		month, _ := strconv.Atoi(t[loc[4]:loc[5]])
		year := today.Year()
		if loc[6] >= 0 {
			year, _ = strconv.Atoi(t[loc[6]:loc[7]])
			if year < 100 {
				year += 2000
			}
		}
		if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		if d, valid := makeDate(year, time.Month(month), day); valid {
			return d.Format("2006-01-02")
		}
	}

	return ""
}

// makeDate builds a date and reports whether the day actually exists in that
// month (time.Date silently normalizes overflow).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// adjacentToWord reports whether the match at [start,end) touches a letter on
// the left or a letter/digit on the right.
func adjacentToWord(t string, start, end int) bool {
	if start > 0 {
		c := t[start-1]
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	if end < len(t) {
		c := t[end]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}

// foldAccents maps accented vowels to their bare forms so "miércoles" and
// "miercoles" compare equal. The ñ is intentionally untouched: it is
// significant in Spanish keywords ("mañana" vs "manana" is handled by
// listing both).
func foldAccents(s string) string {
	return accentReplacer.Replace(s)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
)
