package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Extraction — satu frasa tanggal yang ketemu di pesan plus hasil resolve-nya.
type Extraction struct {
	Text string
	Time time.Time
}

var datePattern = regexp.MustCompile(`(?i)\b(?:on\s+)?(` +
	`(?:next|last|this)?\s*` +
	`(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
	`|today|tomorrow|yesterday` +
	`|\d{1,2}(?:st|nd|rd|th)?\s+[A-Za-z]+(?:\s+\d{4})?` + // "27th October 2025"
	`)(?:'s)?`)

var parser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

var ordinalPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)

// parseExplicit menangani bentuk tanggal eksplisit ("27th October 2025",
// "15 Nov") yang tidak dikenali rule when. Tanpa tahun, dipakai tahun base.
func parseExplicit(text string, base time.Time) (time.Time, bool) {
	clean := ordinalPattern.ReplaceAllString(text, "$1")
	clean = normalizeMonthCase(strings.Join(strings.Fields(clean), " "))

	for _, layout := range []string{"2 January 2006", "2 Jan 2006"} {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, true
		}
	}
	for _, layout := range []string{"2 January", "2 Jan"} {
		if t, err := time.Parse(layout, clean); err == nil {
			return time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, base.Location()), true
		}
	}
	return time.Time{}, false
}

// normalizeMonthCase menyamakan kapitalisasi nama bulan ("october"/"OCTOBER"
// → "October") supaya cocok dengan layout time.Parse.
func normalizeMonthCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if f == "" || f[0] < 'A' || (f[0] > 'Z' && (f[0] < 'a' || f[0] > 'z')) {
			continue
		}
		fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
	}
	return strings.Join(fields, " ")
}

// Extract mengambil semua frasa tanggal/hari dari pesan, urut kemunculan,
// dan me-resolve tiap frasa relatif terhadap base. Frasa yang ketangkap
// regex tapi gagal di-resolve dilewati.
//
// Yang dikenali: nama hari (opsional next/last/this), today/tomorrow/
// yesterday, tanggal eksplisit ("27th October 2025"), plus bentuk
// posesif ("tomorrow's").
func Extract(message string, base time.Time) []Extraction {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	var out []Extraction
	rest := message
	for {
		loc := datePattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		text := strings.TrimSpace(rest[loc[2]:loc[3]])
		rest = rest[loc[1]:]

		// bentuk eksplisit duluan: when mengabaikan tahun dan menggeser
		// tanggal ke kemunculan terdekat, padahal "27th October 2025"
		// harus persis tahun itu
		if t, ok := parseExplicit(text, base); ok {
			out = append(out, Extraction{Text: text, Time: t})
			continue
		}

		res, err := parser.Parse(text, base)
		if err != nil || res == nil {
			continue
		}
		out = append(out, Extraction{Text: text, Time: res.Time})
	}
	return out
}
