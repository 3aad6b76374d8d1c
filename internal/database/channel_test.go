package database

import (
	"database/sql"
	"testing"

	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelRepository_CreateAndGetBySlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{
		SlackChannelID:   "C123456789",
		SlackChannelName: "planning",
		SlackTeamID:      "T123456789",
	}
	require.NoError(t, repo.Create(channel))
	assert.NotZero(t, channel.ID)

	found, err := repo.GetBySlackID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, channel.ID, found.ID)
	assert.Equal(t, "planning", found.SlackChannelName)
	assert.Equal(t, "T123456789", found.SlackTeamID)
	assert.False(t, found.CreatedAt.IsZero())

	missing, err := repo.GetBySlackID("C000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChannelRepository_Rename(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{SlackChannelID: "C123456789", SlackChannelName: "planning"}
	require.NoError(t, repo.Create(channel))

	channel.SlackChannelName = "sprint-planning"
	require.NoError(t, repo.Rename(channel))
	assert.False(t, channel.UpdatedAt.IsZero())

	found, err := repo.GetBySlackID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "sprint-planning", found.SlackChannelName)
	assert.Equal(t, channel.ID, found.ID)

	err = repo.Rename(&entity.Channel{ID: 99999, SlackChannelName: "ghost"})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestChannelRepository_CreateDuplicateSlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelRepo(db.conn)

	first := &entity.Channel{SlackChannelID: "C123456789", SlackChannelName: "first"}
	require.NoError(t, repo.Create(first))

	second := &entity.Channel{SlackChannelID: "C123456789", SlackChannelName: "second"}
	err := repo.Create(second)
	require.Error(t, err, "slack_channel_id is unique")
	assert.Zero(t, second.ID)
}
