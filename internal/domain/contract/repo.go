package contract

import (
	"context"

	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	Preset() PresetRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	// Rename stores a new display name for an existing channel
	Rename(channel *entity.Channel) error
}

// PresetRepo defines the contract for predefined range repository
type PresetRepo interface {
	Create(preset *entity.Preset) error
	GetByLabel(channelID int64, label string) (*entity.Preset, error)
	ListByChannel(channelID int64) ([]*entity.Preset, error)
	Count(channelID int64) (int, error)
	Delete(channelID int64, label string) error
}
