package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "empty text shows help", text: "   ", wantType: CmdHelp},
		{name: "help", text: "help", wantType: CmdHelp},
		{name: "start", text: "start 2024-10-21", wantType: CmdStart, wantArgs: []string{"2024-10-21"}},
		{name: "start alias", text: "from 2024-10-21", wantType: CmdStart, wantArgs: []string{"2024-10-21"}},
		{name: "end is case insensitive", text: "END 2024-10-24", wantType: CmdEnd, wantArgs: []string{"2024-10-24"}},
		{name: "preset with spaces", text: "preset This Week", wantType: CmdPreset, wantArgs: []string{"This", "Week"}},
		{name: "preset quoted", text: `preset "This Week"`, wantType: CmdPreset, wantArgs: []string{"This Week"}},
		{name: "presets", text: "presets", wantType: CmdPresets},
		{
			name:     "preset-add quoted label",
			text:     `preset-add "Sprint 42" 2024-10-07 2024-10-18`,
			wantType: CmdPresetAdd,
			wantArgs: []string{"Sprint 42", "2024-10-07", "2024-10-18"},
		},
		{
			name:     "preset-add smart quotes",
			text:     "add “Sprint 42” 2024-10-07 2024-10-18",
			wantType: CmdPresetAdd,
			wantArgs: []string{"Sprint 42", "2024-10-07", "2024-10-18"},
		},
		{name: "preset-remove", text: "rm Last Month", wantType: CmdPresetRemove, wantArgs: []string{"Last", "Month"}},
		{name: "clear", text: "clear", wantType: CmdClear},
		{name: "status", text: "status", wantType: CmdStatus},
		{name: "unknown command", text: "rotate", wantErr: true},
		{name: "apostrophe inside a label", text: "preset Tom's week", wantType: CmdPreset, wantArgs: []string{"Tom's", "week"}},
		{name: "apostrophe inside a quoted label", text: `preset-add "Tom's week" 2024-10-21 2024-10-24`, wantType: CmdPresetAdd, wantArgs: []string{"Tom's week", "2024-10-21", "2024-10-24"}},
		{name: "single quoted label", text: "preset 'This Week'", wantType: CmdPreset, wantArgs: []string{"This Week"}},
		{name: "unterminated quote", text: `preset "This Week`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommand_Label(t *testing.T) {
	cmd, err := ParseCommand("preset   Last   Month ")
	require.NoError(t, err)
	assert.Equal(t, "Last Month", cmd.Label())
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	for _, c := range []string{"start", "end", "clear", "status", "presets", "preset-add", "preset-remove"} {
		assert.Contains(t, help, "/range "+c)
	}
}
