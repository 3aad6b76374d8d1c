package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	slackcmd "github.com/diegoclair/weekday-range-picker/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	pickerService contract.PickerService
	presetService contract.PresetService
	signingSecret string
	log           *zap.Logger
}

func New(pickerService contract.PickerService, presetService contract.PresetService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		pickerService: pickerService,
		presetService: presetService,
		signingSecret: signingSecret,
		log:           log.Named("slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Warn("slash command without a valid signature header", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("slash command signature mismatch", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, fmt.Sprintf("%v. Use `%s help` to see the available commands.", err, s.Command))
		return
	}

	// Handle command
	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStart:
		return h.handleDateInput(r, cmd, slashCmd, h.pickerService.SetStart)
	case slackcmd.CmdEnd:
		return h.handleDateInput(r, cmd, slashCmd, h.pickerService.SetEnd)
	case slackcmd.CmdPreset:
		return h.handlePreset(r, cmd, slashCmd)
	case slackcmd.CmdPresets:
		return h.handleListPresets(slashCmd)
	case slackcmd.CmdPresetAdd:
		return h.handleAddPreset(cmd, slashCmd)
	case slackcmd.CmdPresetRemove:
		return h.handleRemovePreset(cmd, slashCmd)
	case slackcmd.CmdClear:
		return h.handleClear(r, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(r, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

type dateSetter func(ctx context.Context, key entity.SessionKey, input string) (*entity.Outcome, error)

func (h *SlackHandler) handleDateInput(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand, set dateSetter) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse(fmt.Sprintf("Please provide one date: `%s %s YYYY-MM-DD`", slashCmd.Command, cmd.Type))
	}

	outcome, err := set(r.Context(), sessionKey(slashCmd), cmd.Args[0])
	if err != nil && outcome == nil {
		h.log.Error("failed to apply date", zap.String("command", string(cmd.Type)), zap.Error(err))
		return h.createErrorResponse("Failed to update the selection")
	}
	if err != nil {
		h.log.Warn("selection stored but consumer was not notified", zap.Error(err))
	}

	return h.renderOutcome(outcome)
}

func (h *SlackHandler) handlePreset(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	label := cmd.Label()
	if label == "" {
		return h.createErrorResponse(fmt.Sprintf("Please name the predefined range: `%s preset NAME`", slashCmd.Command))
	}

	channel, _, err := h.presetService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		h.log.Error("failed to set up channel", zap.String("slack_channel_id", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Error checking channel")
	}

	outcome, err := h.pickerService.ApplyPreset(r.Context(), sessionKey(slashCmd), channel.ID, label)
	if errors.Is(err, domain.ErrPresetNotFound) {
		return h.createErrorResponse(fmt.Sprintf("Predefined range *%s* not found. Use `%s presets` to list them.", label, slashCmd.Command))
	}
	if err != nil && outcome == nil {
		h.log.Error("failed to apply preset", zap.String("label", label), zap.Error(err))
		return h.createErrorResponse("Failed to apply the predefined range")
	}
	if err != nil {
		h.log.Warn("selection stored but consumer was not notified", zap.Error(err))
	}

	return h.renderOutcome(outcome)
}

func (h *SlackHandler) handleListPresets(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.presetService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Error checking channel")
	}

	presets, err := h.presetService.ListPresets(channel.ID)
	if err != nil {
		h.log.Error("failed to list presets", zap.Int64("channel_id", channel.ID), zap.Error(err))
		return h.createErrorResponse("Error listing predefined ranges")
	}

	if len(presets) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No predefined ranges in this channel. Use `%s preset-add \"NAME\" YYYY-MM-DD YYYY-MM-DD` to add one.", slashCmd.Command),
		}
	}

	var list strings.Builder
	list.WriteString("*Predefined ranges:*\n")
	for i, p := range presets {
		list.WriteString(fmt.Sprintf("%d. *%s* (%s to %s)\n", i+1, p.Label, p.Start, p.End))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleAddPreset(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) != 3 {
		return h.createErrorResponse(fmt.Sprintf("Use: `%s preset-add \"NAME\" YYYY-MM-DD YYYY-MM-DD`", slashCmd.Command))
	}

	channel, _, err := h.presetService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Error checking channel")
	}

	preset, err := h.presetService.AddPreset(channel.ID, cmd.Args[0], cmd.Args[1], cmd.Args[2])
	if err != nil {
		if errors.Is(err, domain.ErrPresetExists) || errors.Is(err, domain.ErrInvalidPreset) {
			return h.createErrorResponse(fmt.Sprintf("Could not add predefined range: %v", err))
		}
		h.log.Error("failed to add preset", zap.Error(err))
		return h.createErrorResponse("Error adding predefined range")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Predefined range *%s* added: %s to %s", preset.Label, preset.Start, preset.End),
	}
}

func (h *SlackHandler) handleRemovePreset(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	label := cmd.Label()
	if label == "" {
		return h.createErrorResponse(fmt.Sprintf("Use: `%s preset-remove NAME`", slashCmd.Command))
	}

	channel, _, err := h.presetService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Error checking channel")
	}

	if err := h.presetService.RemovePreset(channel.ID, label); err != nil {
		if errors.Is(err, domain.ErrPresetNotFound) {
			return h.createErrorResponse(fmt.Sprintf("Predefined range *%s* not found.", label))
		}
		h.log.Error("failed to remove preset", zap.Error(err))
		return h.createErrorResponse("Error removing predefined range")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Predefined range *%s* removed.", label),
	}
}

func (h *SlackHandler) handleClear(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	h.pickerService.Clear(r.Context(), sessionKey(slashCmd))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🧹 Selection cleared.",
	}
}

func (h *SlackHandler) handleStatus(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	outcome := h.pickerService.Status(r.Context(), sessionKey(slashCmd))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         describeState(outcome.State),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// renderOutcome shows the active error if any, otherwise the confirmed range
func (h *SlackHandler) renderOutcome(outcome *entity.Outcome) *slack.Msg {
	if outcome.State.Err != nil {
		return h.createErrorResponse(outcome.State.Err.Message)
	}

	if !outcome.Selected() {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         describeState(outcome.State),
		}
	}

	n := outcome.Notification
	var text strings.Builder
	text.WriteString(fmt.Sprintf("✅ Date range selected: %s to %s\n", n.Range[0], n.Range[1]))
	text.WriteString(fmt.Sprintf("Weekdays: %d", len(n.Weekdays)))
	if len(n.Weekends) > 0 {
		text.WriteString(fmt.Sprintf(" | Weekends excluded: %s", strings.Join(n.Weekends, ", ")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func describeState(state picker.State) string {
	switch state.Status() {
	case picker.StatusEmpty:
		return "No dates selected yet."
	case picker.StatusPartialStart:
		return fmt.Sprintf("Start date: %s. Pick an end date to complete the range.", state.Start)
	case picker.StatusPartialEnd:
		return fmt.Sprintf("End date: %s. Pick a start date to complete the range.", state.End)
	case picker.StatusValid:
		return fmt.Sprintf("Date range selected: %s to %s", state.Start, state.End)
	case picker.StatusInvalid:
		text := fmt.Sprintf("❌ %s", state.Err.Message)
		if r, ok := state.Range(); ok {
			text += fmt.Sprintf("\nLast valid range: %s to %s", r.Start, r.End)
		}
		return text
	}
	return ""
}

func sessionKey(slashCmd *slack.SlashCommand) entity.SessionKey {
	return entity.SessionKey{
		TeamID:    slashCmd.TeamID,
		ChannelID: slashCmd.ChannelID,
		UserID:    slashCmd.UserID,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
