package entity

import "time"

// Channel is a Slack channel that owns a list of predefined ranges
type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
