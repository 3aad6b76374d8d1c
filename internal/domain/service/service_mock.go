package service

import (
	"testing"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/diegoclair/weekday-range-picker/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockChannelRepo *mocks.MockChannelRepo
	mockPresetRepo  *mocks.MockPresetRepo
	mockNotifier    *mocks.MockSelectionNotifier
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	presetRepo := mocks.NewMockPresetRepo(ctrl)
	dm.EXPECT().Preset().Return(presetRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockChannelRepo: channelRepo,
		mockPresetRepo:  presetRepo,
		mockNotifier:    mocks.NewMockSelectionNotifier(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockNotifier, zap.NewNop(), domain.DefaultPresets, PickerOptions{})
	require.NotNil(t, instance.Picker)
	require.NotNil(t, instance.Preset)

	return
}

func newTestPicker(m allMocks, opts PickerOptions) *pickerService {
	return newPicker(m.mockDataManager, m.mockNotifier, zap.NewNop(), opts)
}

// fixedClock returns a clock that can be moved forward by tests
func fixedClock(start time.Time) (now func() time.Time, advance func(time.Duration)) {
	current := start
	return func() time.Time { return current }, func(d time.Duration) { current = current.Add(d) }
}
