package slack

import (
	"fmt"
	"strings"
	"unicode"
)

type CommandType string

const (
	CmdStart        CommandType = "start"
	CmdEnd          CommandType = "end"
	CmdPreset       CommandType = "preset"
	CmdPresets      CommandType = "presets"
	CmdPresetAdd    CommandType = "preset-add"
	CmdPresetRemove CommandType = "preset-remove"
	CmdClear        CommandType = "clear"
	CmdStatus       CommandType = "status"
	CmdHelp         CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Label joins the arguments back into a single label, for commands whose
// only argument is a preset label that may contain spaces
func (c *Command) Label() string {
	return strings.Join(c.Args, " ")
}

func ParseCommand(text string) (*Command, error) {
	parts, err := splitArgs(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "start", "from":
		cmd.Type = CmdStart
	case "end", "to":
		cmd.Type = CmdEnd
	case "preset", "use":
		cmd.Type = CmdPreset
	case "presets", "ranges":
		cmd.Type = CmdPresets
	case "preset-add", "add":
		cmd.Type = CmdPresetAdd
	case "preset-remove", "remove", "rm":
		cmd.Type = CmdPresetRemove
	case "clear", "reset":
		cmd.Type = CmdClear
	case "status", "show":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// splitArgs splits on whitespace and keeps double- or single-quoted (including Slack's smart quotes) segments together.
// A quote only opens at the start of an argument, so apostrophes inside words stay literal.
func splitArgs(text string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)

	for _, r := range text {
		switch {
		case quote != 0:
			if r == quote || (quote == '“' && r == '”') {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case !inArg && (r == '"' || r == '\'' || r == '“'):
			quote = r
			inArg = true
		case unicode.IsSpace(r):
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in: %s", text)
	}
	if inArg {
		args = append(args, current.String())
	}

	return args, nil
}

func GetHelpText() string {
	return `*Weekday Range Picker*

*Pick a range:*
• ` + "`/range start YYYY-MM-DD`" + ` - Set the start date (weekdays only)
• ` + "`/range end YYYY-MM-DD`" + ` - Set the end date (weekdays only)
• ` + "`/range clear`" + ` - Clear the current selection
• ` + "`/range status`" + ` - Show the current selection

*Predefined ranges:*
• ` + "`/range presets`" + ` - List the predefined ranges of this channel
• ` + "`/range preset NAME`" + ` - Select a predefined range (ex: This Week)
• ` + "`/range preset-add \"NAME\" YYYY-MM-DD YYYY-MM-DD`" + ` - Add a predefined range
• ` + "`/range preset-remove NAME`" + ` - Remove a predefined range`
}
