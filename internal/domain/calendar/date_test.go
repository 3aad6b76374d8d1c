package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "Should parse ISO date", input: "2024-10-21", want: New(2024, time.October, 21)},
		{name: "Should trim surrounding spaces", input: "  2024-09-01 ", want: New(2024, time.September, 1)},
		{name: "Should parse leap day", input: "2024-02-29", want: New(2024, time.February, 29)},
		{name: "Should reject empty input", input: "", wantErr: true},
		{name: "Should reject non leap day", input: "2023-02-29", wantErr: true},
		{name: "Should reject other layouts", input: "21/10/2024", wantErr: true},
		{name: "Should reject garbage", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromTime(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	got := FromTime(time.Date(2024, time.October, 21, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-10-22", got.String())

	assert.Equal(t, "2024-10-21", FromTime(time.Date(2024, time.October, 21, 0, 0, 0, 0, time.UTC)).String())
}

func TestDate_NextDay(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{from: "2024-10-21", want: "2024-10-22"},
		{from: "2024-10-31", want: "2024-11-01"},
		{from: "2024-12-31", want: "2025-01-01"},
		{from: "2024-02-28", want: "2024-02-29"},
		{from: "2023-02-28", want: "2023-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			d := MustParse(tt.from)
			next := d.NextDay()

			assert.Equal(t, tt.want, next.String())
			assert.Equal(t, tt.from, d.String(), "NextDay must not modify the receiver")
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := MustParse("2024-09-30")
	b := MustParse("2024-10-01")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(MustParse("2024-09-30")))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(New(2024, time.September, 30)))
	assert.False(t, a.After(a))
	assert.True(t, MustParse("2023-12-31").Before(MustParse("2024-01-01")))
}

func TestDate_ISOWeekday(t *testing.T) {
	assert.Equal(t, domain.Monday, MustParse("2024-10-21").ISOWeekday())
	assert.Equal(t, domain.Friday, MustParse("2024-09-27").ISOWeekday())
	assert.Equal(t, domain.Saturday, MustParse("2024-10-26").ISOWeekday())
	assert.Equal(t, domain.Sunday, MustParse("2024-10-27").ISOWeekday())
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, MustParse("2024-10-21").IsZero())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Day Date `json:"day"`
	}

	data, err := json.Marshal(payload{Day: MustParse("2024-10-21")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-10-21"}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-09-28"}`), &got))
	assert.Equal(t, MustParse("2024-09-28"), got.Day)

	require.Error(t, json.Unmarshal([]byte(`{"day":"2024-13-01"}`), &got))
}

func TestStrings(t *testing.T) {
	got := Strings([]Date{MustParse("2024-09-28"), MustParse("2024-09-29")})
	assert.Equal(t, []string{"2024-09-28", "2024-09-29"}, got)
	assert.Empty(t, Strings(nil))
}
