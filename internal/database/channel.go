package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func (r *channelRepo) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (slack_channel_id, slack_channel_name, slack_team_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, channel.SlackChannelID, channel.SlackChannelName, channel.SlackTeamID)
	if err != nil {
		return fmt.Errorf("failed to register channel %s: %w", channel.SlackChannelID, err)
	}

	if channel.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("failed to get channel id: %w", err)
	}
	return nil
}

// GetBySlackID returns nil without error when the channel was never registered
func (r *channelRepo) GetBySlackID(slackChannelID string) (*entity.Channel, error) {
	query := `
		SELECT id, slack_channel_id, slack_channel_name, slack_team_id, created_at, updated_at
		FROM channels
		WHERE slack_channel_id = ?
	`

	channel, err := scanChannel(r.db.QueryRow(query, slackChannelID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", slackChannelID, err)
	}
	return channel, nil
}

func (r *channelRepo) Rename(channel *entity.Channel) error {
	now := time.Now().UTC()

	result, err := r.db.Exec(
		`UPDATE channels SET slack_channel_name = ?, updated_at = ? WHERE id = ?`,
		channel.SlackChannelName, now, channel.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to rename channel %d: %w", channel.ID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to rename channel %d: %w", channel.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("failed to rename channel %d: %w", channel.ID, sql.ErrNoRows)
	}

	channel.UpdatedAt = now
	return nil
}

func scanChannel(row rowScanner) (*entity.Channel, error) {
	channel := &entity.Channel{}
	err := row.Scan(
		&channel.ID,
		&channel.SlackChannelID,
		&channel.SlackChannelName,
		&channel.SlackTeamID,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return channel, nil
}
