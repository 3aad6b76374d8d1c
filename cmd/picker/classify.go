package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		start  string
		end    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Select a range and list its weekdays and weekends",
		Long: `Select a range the way the picker does and list its weekdays and weekends.

Both bounds must be weekdays and the start must not be after the end.`,
		Example: "  picker classify --start 2024-09-27 --end 2024-09-30",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.OutOrStdout(), start, end, asJSON)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the selection as JSON")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runClassify(out io.Writer, start, end string, asJSON bool) error {
	state := picker.Clear()
	for _, step := range []struct {
		input string
		set   func(picker.State, calendar.Date) picker.State
	}{
		{input: start, set: picker.State.SetStart},
		{input: end, set: picker.State.SetEnd},
	} {
		d, err := calendar.Parse(step.input)
		if err != nil {
			state = state.Reject(err)
		} else {
			state = step.set(state, d)
		}
		if state.Err != nil {
			return state.Err
		}
	}

	r, ok := state.Range()
	if !ok {
		return errors.New("no range selected")
	}
	classified, err := picker.Classify(r)
	if err != nil {
		return err
	}
	n := picker.NewNotification(r, classified)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	}

	fmt.Fprintf(out, "Range:    %s to %s\n", n.Range[0], n.Range[1])
	fmt.Fprintf(out, "Weekdays: %d (%s)\n", len(n.Weekdays), strings.Join(n.Weekdays, ", "))
	if len(n.Weekends) == 0 {
		fmt.Fprintln(out, "Weekends: none")
		return nil
	}
	fmt.Fprintf(out, "Weekends: %s\n", strings.Join(n.Weekends, ", "))
	return nil
}
