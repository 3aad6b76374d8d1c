package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// ISOWeekday converts Go's Sunday-first weekday into the ISO 8601 numbering
func ISOWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return Sunday
	}
	return int(w)
}

// SlashCommand is the command name registered in the Slack app
const SlashCommand = "/range"

// PresetSeed is a predefined range as written in configuration, dates in YYYY-MM-DD
type PresetSeed struct {
	Label string `yaml:"label"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DefaultPresets are seeded into every new channel when no presets file is configured
var DefaultPresets = []PresetSeed{
	{Label: "This Week", Start: "2024-10-21", End: "2024-10-24"},
	{Label: "Last Month", Start: "2024-09-01", End: "2024-09-30"},
}
