package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// slackNotifier announces every confirmed range in the channel it was picked in
type slackNotifier struct {
	client contract.SlackClient
}

func NewSlackNotifier(client contract.SlackClient) contract.SelectionNotifier {
	return &slackNotifier{client: client}
}

func (n *slackNotifier) Notify(ctx context.Context, target contract.NotifyTarget, selection picker.Notification) error {
	if target.SlackChannelID == "" {
		return nil
	}

	_, _, err := n.client.PostMessage(
		target.SlackChannelID,
		slack.MsgOptionText(FormatNotification(target, selection), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

// FormatNotification renders a selection the way it is announced in Slack
func FormatNotification(target contract.NotifyTarget, selection picker.Notification) string {
	var b strings.Builder

	b.WriteString("📅 *Weekday range selected*")
	if target.SlackUserID != "" {
		fmt.Fprintf(&b, " by <@%s>", target.SlackUserID)
	}
	fmt.Fprintf(&b, "\n\n*%s* to *%s*: %d weekdays", selection.Range[0], selection.Range[1], len(selection.Weekdays))

	if len(selection.Weekends) == 0 {
		b.WriteString(", no weekend days")
	} else {
		fmt.Fprintf(&b, ", %d weekend days excluded: %s", len(selection.Weekends), strings.Join(selection.Weekends, ", "))
	}

	return b.String()
}

// logNotifier records selections in the log. Used when no Slack token is configured.
type logNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) contract.SelectionNotifier {
	return &logNotifier{log: log.Named("consumer")}
}

func (n *logNotifier) Notify(ctx context.Context, target contract.NotifyTarget, selection picker.Notification) error {
	n.log.Info("selected range",
		zap.String("slack_channel_id", target.SlackChannelID),
		zap.String("slack_user_id", target.SlackUserID),
		zap.Strings("range", selection.Range[:]),
		zap.Strings("weekdays", selection.Weekdays),
		zap.Strings("weekends", selection.Weekends),
	)
	return nil
}

// fanoutNotifier delivers to every notifier, even when one of them fails
type fanoutNotifier []contract.SelectionNotifier

func NewFanoutNotifier(notifiers ...contract.SelectionNotifier) contract.SelectionNotifier {
	return fanoutNotifier(notifiers)
}

func (f fanoutNotifier) Notify(ctx context.Context, target contract.NotifyTarget, selection picker.Notification) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, target, selection); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
