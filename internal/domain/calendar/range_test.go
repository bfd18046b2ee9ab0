//go:build unit

package calendar_test

import (
	"testing"

	"staycal/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustRange(t *testing.T, start, end string) calendar.DateRange {
	t.Helper()
	r, err := calendar.NewDateRange(mustDate(t, start), mustDate(t, end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("開始<=終了OK", func(t *testing.T) {
		r, err := calendar.NewDateRange(mustDate(t, "2026-01-10"), mustDate(t, "2026-01-12"))
		require.NoError(t, err)
		assert.Equal(t, "2026-01-10", r.Start().String())
		assert.Equal(t, "2026-01-12", r.End().String())
	})

	t.Run("単日レンジOK", func(t *testing.T) {
		r, err := calendar.NewDateRange(mustDate(t, "2026-01-10"), mustDate(t, "2026-01-10"))
		require.NoError(t, err)
		assert.Equal(t, 1, len(r.Dates()))
	})

	t.Run("開始>終了NG", func(t *testing.T) {
		_, err := calendar.NewDateRange(mustDate(t, "2026-01-12"), mustDate(t, "2026-01-10"))
		require.ErrorIs(t, err, calendar.ErrInvalidRange)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	type testCase struct {
		name string
		a    calendar.DateRange
		b    calendar.DateRange
		want bool
	}

	cases := []testCase{
		{
			name: "完全に分離",
			a:    mustRange(t, "2026-01-10", "2026-01-12"),
			b:    mustRange(t, "2026-01-20", "2026-01-22"),
			want: false,
		},
		{
			name: "隣接（前日まで）は重複しない",
			a:    mustRange(t, "2026-01-10", "2026-01-12"),
			b:    mustRange(t, "2026-01-13", "2026-01-15"),
			want: false,
		},
		{
			name: "端点共有は重複",
			a:    mustRange(t, "2026-01-10", "2026-01-12"),
			b:    mustRange(t, "2026-01-12", "2026-01-15"),
			want: true,
		},
		{
			name: "包含は重複",
			a:    mustRange(t, "2026-01-01", "2026-01-31"),
			b:    mustRange(t, "2026-01-10", "2026-01-12"),
			want: true,
		},
		{
			name: "同一レンジは重複",
			a:    mustRange(t, "2026-01-10", "2026-01-12"),
			b:    mustRange(t, "2026-01-10", "2026-01-12"),
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Overlaps(c.b))
			assert.Equal(t, c.want, c.b.Overlaps(c.a))
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := mustRange(t, "2026-01-10", "2026-01-12")

	assert.True(t, r.Contains(mustDate(t, "2026-01-10")))
	assert.True(t, r.Contains(mustDate(t, "2026-01-11")))
	assert.True(t, r.Contains(mustDate(t, "2026-01-12")))
	assert.False(t, r.Contains(mustDate(t, "2026-01-09")))
	assert.False(t, r.Contains(mustDate(t, "2026-01-13")))
}

func TestDateRangeDatesAndNights(t *testing.T) {
	r := mustRange(t, "2026-01-10", "2026-01-12")

	dates := r.Dates()
	require.Len(t, dates, 3)
	assert.Equal(t, "2026-01-10", dates[0].String())
	assert.Equal(t, "2026-01-12", dates[2].String())

	// 1/10チェックイン・1/12チェックアウトで2泊
	assert.Equal(t, 2, r.Nights())
}
