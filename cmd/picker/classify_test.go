package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClassify(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    string
		wantErr error
	}{
		{
			name:  "Should list excluded weekends",
			start: "2024-09-27",
			end:   "2024-09-30",
			want:  "Range:    2024-09-27 to 2024-09-30\nWeekdays: 2 (2024-09-27, 2024-09-30)\nWeekends: 2024-09-28, 2024-09-29\n",
		},
		{
			name:  "Should print none for a working week",
			start: "2024-10-21",
			end:   "2024-10-24",
			want:  "Range:    2024-10-21 to 2024-10-24\nWeekdays: 4 (2024-10-21, 2024-10-22, 2024-10-23, 2024-10-24)\nWeekends: none\n",
		},
		{name: "Should reject a weekend start", start: "2024-10-26", end: "2024-10-28", wantErr: picker.ErrStartIsWeekend},
		{name: "Should reject a weekend end", start: "2024-10-21", end: "2024-10-27", wantErr: picker.ErrEndIsWeekend},
		{name: "Should reject an end before the start", start: "2024-10-24", end: "2024-10-21", wantErr: picker.ErrEndBeforeStart},
		{name: "Should reject an unparsable date", start: "monday", end: "2024-10-21", wantErr: picker.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runClassify(&out, tt.start, tt.end, false)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunClassify_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runClassify(&out, "2024-09-27", "2024-09-30", true))

	var got picker.Notification
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, picker.Notification{
		Range:    [2]string{"2024-09-27", "2024-09-30"},
		Weekdays: []string{"2024-09-27", "2024-09-30"},
		Weekends: []string{"2024-09-28", "2024-09-29"},
	}, got)
}
