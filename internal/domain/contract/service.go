package contract

import (
	"context"

	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

// PickerService holds the selection of every open picker and applies user input to it.
// Rejected input is reported through Outcome.State.Err; the error return is for infrastructure failures.
type PickerService interface {
	SetStart(ctx context.Context, key entity.SessionKey, input string) (*entity.Outcome, error)
	SetEnd(ctx context.Context, key entity.SessionKey, input string) (*entity.Outcome, error)
	ApplyPreset(ctx context.Context, key entity.SessionKey, channelID int64, label string) (*entity.Outcome, error)
	Clear(ctx context.Context, key entity.SessionKey) *entity.Outcome
	Status(ctx context.Context, key entity.SessionKey) *entity.Outcome
}

// PresetService manages the predefined ranges of each channel
type PresetService interface {
	SetupChannel(slackChannelID, channelName, teamID string) (*entity.Channel, bool, error)
	ListPresets(channelID int64) ([]*entity.Preset, error)
	AddPreset(channelID int64, label, start, end string) (*entity.Preset, error)
	RemovePreset(channelID int64, label string) error
}

// NotifyTarget tells the consumer where the selection was made
type NotifyTarget struct {
	SlackChannelID string
	SlackUserID    string
}

// SelectionNotifier is the consumer of successful selections
type SelectionNotifier interface {
	Notify(ctx context.Context, target NotifyTarget, n picker.Notification) error
}
