// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"absenku_backend/internals/constants"
)

// Kolom jam slot disimpan sebagai "HH:MM" (type:time di Postgres) supaya
// pencocokan slot pakai perbandingan string persis, bukan time.Time yang
// bawa-bawa zona.

const clockLayout = "15:04"

// NormalizeClock memvalidasi & menormalkan "9:00" / "09:00:00" → "09:00".
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{clockLayout, "15:04:05", "3:04PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(clockLayout), nil
		}
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "Format jam tidak valid (pakai HH:MM): "+s)
}

// NormalizeDate memotong timestamp ke tengah malam UTC supaya equality di
// kolom date konsisten antar driver.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate menerima "2006-01-02".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid (pakai YYYY-MM-DD): "+s)
	}
	return NormalizeDate(t), nil
}

// DayOf mengembalikan Day enum dari tanggal kalender.
func DayOf(t time.Time) constants.Day {
	return constants.Day(t.Format("Mon"))
}
