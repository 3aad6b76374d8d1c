package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testKey = entity.SessionKey{TeamID: "T123456789", ChannelID: "C123456789", UserID: "U123456789"}

func Test_pickerService_SetStart(t *testing.T) {
	type args struct {
		input string
	}
	tests := []struct {
		name       string
		opts       PickerOptions
		prior      []string
		args       args
		buildMock  func(mocks allMocks)
		wantStatus picker.Status
		wantErr    *picker.ValidationError
		wantRange  [2]string
		wantDrop   bool
	}{
		{
			name: "Should select a single weekday and notify",
			args: args{input: "2024-10-21"},
			buildMock: func(mocks allMocks) {
				mocks.mockNotifier.EXPECT().
					Notify(gomock.Any(), contract.NotifyTarget{SlackChannelID: "C123456789", SlackUserID: "U123456789"}, picker.Notification{
						Range:    [2]string{"2024-10-21", "2024-10-21"},
						Weekdays: []string{"2024-10-21"},
						Weekends: []string{},
					}).
					Return(nil).Times(1)
			},
			wantStatus: picker.StatusPartialStart,
			wantRange:  [2]string{"2024-10-21", "2024-10-21"},
		},
		{
			name:       "Should reject a Saturday without notifying",
			args:       args{input: "2024-10-26"},
			wantStatus: picker.StatusInvalid,
			wantErr:    picker.ErrStartIsWeekend,
		},
		{
			name:  "Should reject a start after the chosen end and keep the previous range",
			prior: []string{"end:2024-10-18", "start:2024-10-14"},
			args:  args{input: "2024-10-25"},
			buildMock: func(mocks allMocks) {
				mocks.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			wantStatus: picker.StatusInvalid,
			wantErr:    picker.ErrStartAfterEnd,
			wantRange:  [2]string{"2024-10-14", "2024-10-18"},
		},
		{
			name:       "Should report unparsable input as invalid date",
			opts:       PickerOptions{ReportInvalidInput: true},
			args:       args{input: "2024-13-45"},
			wantStatus: picker.StatusInvalid,
			wantErr:    picker.ErrInvalidDate,
		},
		{
			name:       "Should drop unparsable input silently when configured",
			opts:       PickerOptions{ReportInvalidInput: false},
			args:       args{input: "tomorrow"},
			wantStatus: picker.StatusEmpty,
			wantDrop:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			s := newTestPicker(m, tt.opts)
			ctx := context.Background()
			for _, step := range tt.prior {
				applyStep(t, s, step)
			}

			outcome, err := s.SetStart(ctx, testKey, tt.args.input)
			require.NoError(t, err)
			require.NotNil(t, outcome)

			assert.Equal(t, tt.wantStatus, outcome.State.Status())
			assert.Equal(t, tt.wantDrop, outcome.Dropped)
			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, outcome.State.Err)
				assert.False(t, outcome.Selected())
			}
			if tt.wantRange != [2]string{} {
				assert.Equal(t, tt.wantRange, [2]string{outcome.State.Start.String(), outcome.State.End.String()})
			}

			assert.Equal(t, outcome.State, s.Status(ctx, testKey).State, "outcome must match stored state")
		})
	}
}

func applyStep(t *testing.T, s *pickerService, step string) {
	t.Helper()

	var err error
	switch step[:4] {
	case "star":
		_, err = s.SetStart(context.Background(), testKey, step[len("start:"):])
	case "end:":
		_, err = s.SetEnd(context.Background(), testKey, step[len("end:"):])
	default:
		t.Fatalf("unknown step %q", step)
	}
	require.NoError(t, err)
}

func Test_pickerService_SetEnd(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{ReportInvalidInput: true})

	gomock.InOrder(
		m.mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(1),
		m.mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), picker.Notification{
				Range:    [2]string{"2024-09-27", "2024-09-30"},
				Weekdays: []string{"2024-09-27", "2024-09-30"},
				Weekends: []string{"2024-09-28", "2024-09-29"},
			}).
			Return(nil).Times(1),
	)

	outcome, err := s.SetStart(ctx, testKey, "2024-09-27")
	require.NoError(t, err)
	assert.True(t, outcome.Selected())

	outcome, err = s.SetEnd(ctx, testKey, "2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, picker.StatusValid, outcome.State.Status())
	require.NotNil(t, outcome.Classified)
	assert.Equal(t, []string{"2024-09-27", "2024-09-30"}, calendar.Strings(outcome.Classified.Weekdays))
	assert.Equal(t, []string{"2024-09-28", "2024-09-29"}, calendar.Strings(outcome.Classified.Weekends))

	// End before the chosen start
	outcome, err = s.SetEnd(ctx, testKey, "2024-09-26")
	require.NoError(t, err)
	assert.Same(t, picker.ErrEndBeforeStart, outcome.State.Err)
	assert.Equal(t, "2024-09-30", outcome.State.End.String())

	// Weekend end
	outcome, err = s.SetEnd(ctx, testKey, "2024-10-05")
	require.NoError(t, err)
	assert.Same(t, picker.ErrEndIsWeekend, outcome.State.Err)
}

func Test_pickerService_MovingALoneEnd(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{ReportInvalidInput: true})

	gomock.InOrder(
		m.mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(1),
		m.mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), picker.Notification{
				Range:    [2]string{"2024-10-21", "2024-10-24"},
				Weekdays: []string{"2024-10-21", "2024-10-22", "2024-10-23", "2024-10-24"},
				Weekends: []string{},
			}).
			Return(nil).Times(1),
	)

	_, err := s.SetEnd(ctx, testKey, "2024-10-21")
	require.NoError(t, err)

	outcome, err := s.SetEnd(ctx, testKey, "2024-10-24")
	require.NoError(t, err)
	assert.True(t, outcome.Selected())
	assert.Equal(t, picker.StatusPartialEnd, outcome.State.Status())

	// the start filled by the first pick now bounds a new start
	outcome, err = s.SetStart(ctx, testKey, "2024-10-25")
	require.NoError(t, err)
	assert.Same(t, picker.ErrStartAfterEnd, outcome.State.Err)
}

func Test_pickerService_ApplyPreset(t *testing.T) {
	preset := &entity.Preset{
		ID:        1,
		ChannelID: 7,
		Label:     "Last Month",
		Start:     calendar.MustParse("2024-09-01"),
		End:       calendar.MustParse("2024-09-30"),
	}

	tests := []struct {
		name      string
		label     string
		buildMock func(mocks allMocks)
		check     func(t *testing.T, outcome *entity.Outcome, err error)
	}{
		{
			name:  "Should apply a preset with weekend bounds",
			label: "last month",
			buildMock: func(mocks allMocks) {
				mocks.mockPresetRepo.EXPECT().GetByLabel(int64(7), "last month").Return(preset, nil).Times(1)
				mocks.mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ contract.NotifyTarget, n picker.Notification) error {
						assert.Equal(t, [2]string{"2024-09-01", "2024-09-30"}, n.Range)
						assert.Len(t, n.Weekdays, 21)
						assert.Len(t, n.Weekends, 9)
						return nil
					}).Times(1)
			},
			check: func(t *testing.T, outcome *entity.Outcome, err error) {
				require.NoError(t, err)
				assert.Equal(t, picker.StatusValid, outcome.State.Status())
				assert.Nil(t, outcome.State.Err)
			},
		},
		{
			name:  "Should fail when the preset does not exist",
			label: "Next Year",
			buildMock: func(mocks allMocks) {
				mocks.mockPresetRepo.EXPECT().GetByLabel(int64(7), "Next Year").Return(nil, nil).Times(1)
			},
			check: func(t *testing.T, outcome *entity.Outcome, err error) {
				require.ErrorIs(t, err, domain.ErrPresetNotFound)
				assert.Nil(t, outcome)
			},
		},
		{
			name:  "Should fail when the store fails",
			label: "Last Month",
			buildMock: func(mocks allMocks) {
				mocks.mockPresetRepo.EXPECT().GetByLabel(int64(7), "Last Month").Return(nil, errors.New("database error")).Times(1)
			},
			check: func(t *testing.T, outcome *entity.Outcome, err error) {
				require.Error(t, err)
				assert.Nil(t, outcome)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newTestPicker(m, PickerOptions{})
			outcome, err := s.ApplyPreset(context.Background(), testKey, 7, tt.label)
			tt.check(t, outcome, err)
		})
	}
}

func Test_pickerService_PresetClearsError(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{})

	m.mockPresetRepo.EXPECT().GetByLabel(int64(1), "This Week").Return(&entity.Preset{
		Label: "This Week",
		Start: calendar.MustParse("2024-10-21"),
		End:   calendar.MustParse("2024-10-24"),
	}, nil).Times(1)
	m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	outcome, err := s.SetStart(ctx, testKey, "2024-10-26")
	require.NoError(t, err)
	require.Equal(t, picker.StatusInvalid, outcome.State.Status())

	outcome, err = s.ApplyPreset(ctx, testKey, 1, "This Week")
	require.NoError(t, err)
	assert.Nil(t, outcome.State.Err)
	assert.Equal(t, []string{"2024-10-21", "2024-10-22", "2024-10-23", "2024-10-24"}, outcome.Notification.Weekdays)
	assert.Empty(t, outcome.Notification.Weekends)
}

func Test_pickerService_Clear(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{})

	m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.SetStart(ctx, testKey, "2024-10-21")
	require.NoError(t, err)
	_, err = s.SetEnd(ctx, testKey, "2024-10-27")
	require.NoError(t, err)
	require.Equal(t, picker.StatusInvalid, s.Status(ctx, testKey).State.Status())

	outcome := s.Clear(ctx, testKey)
	assert.Equal(t, picker.StatusEmpty, outcome.State.Status())

	status := s.Status(ctx, testKey).State
	assert.Equal(t, picker.StatusEmpty, status.Status())
	assert.Nil(t, status.Err)
	assert.True(t, status.Start.IsZero())
	assert.True(t, status.End.IsZero())
}

func Test_pickerService_SessionsAreIndependent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{})
	other := entity.SessionKey{TeamID: testKey.TeamID, ChannelID: testKey.ChannelID, UserID: "U000000000"}

	m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.SetStart(ctx, testKey, "2024-10-21")
	require.NoError(t, err)

	assert.Equal(t, picker.StatusPartialStart, s.Status(ctx, testKey).State.Status())
	assert.Equal(t, picker.StatusEmpty, s.Status(ctx, other).State.Status())
}

func Test_pickerService_SessionExpiry(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{SessionTTL: time.Hour})
	now, advance := fixedClock(time.Date(2024, time.October, 21, 9, 0, 0, 0, time.UTC))
	s.now = now

	m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.SetStart(ctx, testKey, "2024-10-21")
	require.NoError(t, err)

	advance(59 * time.Minute)
	assert.Equal(t, picker.StatusPartialStart, s.Status(ctx, testKey).State.Status())

	advance(2 * time.Minute)
	assert.Equal(t, picker.StatusEmpty, s.Status(ctx, testKey).State.Status())
}

func Test_pickerService_NotifierFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s := newTestPicker(m, PickerOptions{})

	m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("slack down")).Times(1)

	outcome, err := s.SetStart(ctx, testKey, "2024-10-21")
	require.Error(t, err)
	require.NotNil(t, outcome)
	assert.True(t, outcome.Selected())
	assert.Equal(t, picker.StatusPartialStart, s.Status(ctx, testKey).State.Status(), "selection is kept when the consumer fails")
}
