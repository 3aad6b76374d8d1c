package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/handlers"
	"github.com/diegoclair/weekday-range-picker/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	SigningSecret = "test-signing-secret"
	AllowedOrigin = "https://widget.example.com"
	MaxRangeDays  = 366
)

type ServiceMocks struct {
	PickerServiceMock *mocks.MockPickerService
	PresetServiceMock *mocks.MockPresetService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, router http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		PickerServiceMock: mocks.NewMockPickerService(ctrl),
		PresetServiceMock: mocks.NewMockPresetService(ctrl),
	}

	log := zap.NewNop()
	slackHandler := handlers.New(m.PickerServiceMock, m.PresetServiceMock, SigningSecret, log)
	router = handlers.NewRouter(slackHandler, handlers.NewAPIHandler(log, MaxRangeDays), log, []string{AllowedOrigin})

	return
}

// SlashCommand describes the slash command form fields used by tests
type SlashCommand struct {
	Text        string
	ChannelID   string
	ChannelName string
	UserID      string
	TeamID      string
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, cmd SlashCommand, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {cmd.TeamID},
		"team_domain":  {"test-team"},
		"channel_id":   {cmd.ChannelID},
		"channel_name": {cmd.ChannelName},
		"user_id":      {cmd.UserID},
		"user_name":    {"test-user"},
		"command":      {"/range"},
		"text":         {cmd.Text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
