package picker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Transitions(t *testing.T) {
	s := Clear()
	assert.Equal(t, StatusEmpty, s.Status())

	s = s.SetStart(d("2024-10-21"))
	assert.Equal(t, StatusPartialStart, s.Status())
	assert.Nil(t, s.Err)
	r, ok := s.Range()
	assert.True(t, ok)
	assert.Equal(t, Range{Start: d("2024-10-21"), End: d("2024-10-21")}, r)

	s = s.SetEnd(d("2024-10-24"))
	assert.Equal(t, StatusValid, s.Status())
	r, _ = s.Range()
	assert.Equal(t, Range{Start: d("2024-10-21"), End: d("2024-10-24")}, r)

	s = s.Clear()
	assert.Equal(t, StatusEmpty, s.Status())
	assert.Nil(t, s.Err)
	_, ok = s.Range()
	assert.False(t, ok)
}

func TestState_PartialEnd(t *testing.T) {
	s := Clear().SetEnd(d("2024-10-24"))
	assert.Equal(t, StatusPartialEnd, s.Status())
	assert.Equal(t, d("2024-10-24"), s.Start)

	s = s.SetStart(d("2024-10-21"))
	assert.Equal(t, StatusValid, s.Status())
	assert.Equal(t, d("2024-10-21"), s.Start)
	assert.Equal(t, d("2024-10-24"), s.End)
}

func TestState_FilledBoundTakesPartInChecks(t *testing.T) {
	t.Run("Should reject a later start after a lone start", func(t *testing.T) {
		s := Clear().SetStart(d("2024-10-21")).SetStart(d("2024-10-23"))

		assert.Same(t, ErrStartAfterEnd, s.Err)
		assert.Equal(t, d("2024-10-21"), s.Start)
		assert.Equal(t, d("2024-10-21"), s.End)
	})

	t.Run("Should accept an earlier start after a lone start", func(t *testing.T) {
		s := Clear().SetStart(d("2024-10-23")).SetStart(d("2024-10-21"))

		assert.Nil(t, s.Err)
		r, _ := s.Range()
		assert.Equal(t, Range{Start: d("2024-10-21"), End: d("2024-10-23")}, r)
		assert.Equal(t, StatusPartialStart, s.Status())
	})

	t.Run("Should keep the filled start when the end moves", func(t *testing.T) {
		s := Clear().SetEnd(d("2024-10-21")).SetEnd(d("2024-10-24"))

		assert.Nil(t, s.Err)
		r, ok := s.Range()
		require.True(t, ok)
		assert.Equal(t, Range{Start: d("2024-10-21"), End: d("2024-10-24")}, r)
		assert.Equal(t, StatusPartialEnd, s.Status())

		c, err := Classify(r)
		require.NoError(t, err)
		assert.Len(t, c.Weekdays, 4)
	})

	t.Run("Should reject an earlier end after a lone end", func(t *testing.T) {
		s := Clear().SetEnd(d("2024-10-24")).SetEnd(d("2024-10-21"))

		assert.Same(t, ErrEndBeforeStart, s.Err)
		assert.Equal(t, d("2024-10-24"), s.End)
	})
}

func TestState_RejectKeepsLastValidRange(t *testing.T) {
	valid := Clear().SetStart(d("2024-10-21")).SetEnd(d("2024-10-24"))

	tests := []struct {
		name    string
		apply   func(State) State
		wantErr *ValidationError
	}{
		{name: "weekend start", apply: func(s State) State { return s.SetStart(d("2024-10-26")) }, wantErr: ErrStartIsWeekend},
		{name: "weekend end", apply: func(s State) State { return s.SetEnd(d("2024-10-27")) }, wantErr: ErrEndIsWeekend},
		{name: "start after end", apply: func(s State) State { return s.SetStart(d("2024-10-25")) }, wantErr: ErrStartAfterEnd},
		{name: "end before start", apply: func(s State) State { return s.SetEnd(d("2024-10-18")) }, wantErr: ErrEndBeforeStart},
		{name: "invalid preset", apply: func(s State) State { return s.ApplyPreset(Range{}) }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(valid)

			assert.Equal(t, StatusInvalid, got.Status())
			assert.Same(t, tt.wantErr, got.Err)
			assert.Equal(t, valid.Start, got.Start)
			assert.Equal(t, valid.End, got.End)
		})
	}
}

func TestState_SuccessClearsError(t *testing.T) {
	s := Clear().SetStart(d("2024-10-26"))
	assert.Equal(t, StatusInvalid, s.Status())

	s = s.SetStart(d("2024-10-25"))
	assert.Nil(t, s.Err)
	assert.Equal(t, StatusPartialStart, s.Status())

	s = s.SetEnd(d("2024-10-19"))
	assert.Same(t, ErrEndBeforeStart, s.Err)

	s = s.ApplyPreset(Range{Start: d("2024-09-01"), End: d("2024-09-30")})
	assert.Nil(t, s.Err)
	assert.Equal(t, StatusValid, s.Status())
}

func TestState_OnlyOneErrorAtATime(t *testing.T) {
	s := Clear().SetStart(d("2024-10-26"))
	s = s.SetEnd(d("2024-10-27"))
	assert.Same(t, ErrEndIsWeekend, s.Err)
}

func TestState_RejectForeignError(t *testing.T) {
	s := Clear().Reject(errors.New("boom"))
	assert.Same(t, ErrInvalidDate, s.Err)
}
