package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base: Senin 31 Agustus 2026
var base = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func day(t time.Time) string { return t.Format("2006-01-02") }

func TestExtractRelativeWords(t *testing.T) {
	got := Extract("tomorrow's timetable", base)
	require.Len(t, got, 1)
	assert.Equal(t, "tomorrow", got[0].Text)
	assert.Equal(t, "2026-09-01", day(got[0].Time))

	got = Extract("yesterday's attendance", base)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-08-30", day(got[0].Time))

	got = Extract("what did I have today", base)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-08-31", day(got[0].Time))
}

func TestExtractWeekday(t *testing.T) {
	got := Extract("show Friday's schedule", base)
	require.Len(t, got, 1)
	assert.Equal(t, time.Friday, got[0].Time.Weekday())
}

func TestExtractMultipleInOrder(t *testing.T) {
	got := Extract("I need today's and tomorrow's assignments", base)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-08-31", day(got[0].Time))
	assert.Equal(t, "2026-09-01", day(got[1].Time))
}

func TestExtractExplicitDate(t *testing.T) {
	got := Extract("Meeting on 27th October 2026", base)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-10-27", day(got[0].Time))

	// tahun lampau harus dihormati persis, bukan digeser ke kemunculan
	// terdekat
	got = Extract("what did I attend on 27th October 2025?", base)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-10-27", day(got[0].Time))

	// nama bulan lowercase + singkatan
	got = Extract("logs for 3rd november 2025 please", base)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-11-03", day(got[0].Time))

	// tanpa tahun → tahun base
	got = Extract("fees due on 15 Nov", base)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-11-15", day(got[0].Time))
}

func TestExtractNothing(t *testing.T) {
	assert.Empty(t, Extract("mark me present for DC lecture", base))
	assert.Empty(t, Extract("", base))
	assert.Empty(t, Extract("   ", base))
}
