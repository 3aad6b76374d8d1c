package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
	"go.uber.org/zap"
)

type presetService struct {
	dm       contract.DataManager
	log      *zap.Logger
	defaults []domain.PresetSeed
}

func newPreset(dm contract.DataManager, log *zap.Logger, defaults []domain.PresetSeed) *presetService {
	return &presetService{
		dm:       dm,
		log:      log.Named("preset"),
		defaults: defaults,
	}
}

func (s *presetService) SetupChannel(slackChannelID, slackChannelName, slackTeamID string) (*entity.Channel, bool, error) {
	// Check if channel already exists
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		if slackChannelName != "" && channel.SlackChannelName != slackChannelName {
			previous := channel.SlackChannelName
			channel.SlackChannelName = slackChannelName
			if err := s.dm.Channel().Rename(channel); err != nil {
				return nil, false, fmt.Errorf("failed to refresh channel name: %w", err)
			}
			s.log.Info("channel renamed",
				zap.String("slack_channel_id", slackChannelID),
				zap.String("from", previous),
				zap.String("to", slackChannelName),
			)
		}
		return channel, false, nil
	}

	channel = &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
	}

	err = s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Channel().Create(channel); err != nil {
			return fmt.Errorf("failed to create channel: %w", err)
		}

		for i, seed := range s.defaults {
			preset, err := newPresetFromStrings(channel.ID, seed.Label, seed.Start, seed.End)
			if err != nil {
				return fmt.Errorf("failed to seed preset %q: %w", seed.Label, err)
			}
			preset.Position = i

			if err := tx.Preset().Create(preset); err != nil {
				return fmt.Errorf("failed to seed preset %q: %w", seed.Label, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info("channel registered",
		zap.String("slack_channel_id", slackChannelID),
		zap.Int("presets", len(s.defaults)),
	)

	return channel, true, nil
}

func (s *presetService) ListPresets(channelID int64) ([]*entity.Preset, error) {
	presets, err := s.dm.Preset().ListByChannel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

func (s *presetService) AddPreset(channelID int64, label, start, end string) (*entity.Preset, error) {
	preset, err := newPresetFromStrings(channelID, label, start, end)
	if err != nil {
		return nil, err
	}

	existing, err := s.dm.Preset().GetByLabel(channelID, preset.Label)
	if err != nil {
		return nil, fmt.Errorf("failed to check preset: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPresetExists, existing.Label)
	}

	count, err := s.dm.Preset().Count(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to count presets: %w", err)
	}
	preset.Position = count

	if err := s.dm.Preset().Create(preset); err != nil {
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}

	s.log.Info("preset added",
		zap.Int64("channel_id", channelID),
		zap.String("label", preset.Label),
		zap.Stringer("start", preset.Start),
		zap.Stringer("end", preset.End),
	)

	return preset, nil
}

func (s *presetService) RemovePreset(channelID int64, label string) error {
	existing, err := s.dm.Preset().GetByLabel(channelID, strings.TrimSpace(label))
	if err != nil {
		return fmt.Errorf("failed to check preset: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", domain.ErrPresetNotFound, label)
	}

	if err := s.dm.Preset().Delete(channelID, existing.Label); err != nil {
		return fmt.Errorf("failed to remove preset: %w", err)
	}

	s.log.Info("preset removed", zap.Int64("channel_id", channelID), zap.String("label", existing.Label))
	return nil
}

// newPresetFromStrings validates a predefined range as typed by a user or read from configuration.
// Weekend bounds are allowed; reversed bounds are not.
func newPresetFromStrings(channelID int64, label, start, end string) (*entity.Preset, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrInvalidPreset)
	}

	startDate, err := calendar.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", domain.ErrInvalidPreset, err)
	}

	endDate, err := calendar.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", domain.ErrInvalidPreset, err)
	}

	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidPreset, startDate, endDate)
	}

	return &entity.Preset{
		ChannelID: channelID,
		Label:     label,
		Start:     startDate,
		End:       endDate,
	}, nil
}
