package contract

import "github.com/slack-go/slack"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// PostEphemeral sends a message only the given user can see
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)
}
