package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/workday/internal/workcalc"
)

func newStatusCmd(o *options) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show live net hours and when to leave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := o.now()
			if at != "" {
				c, err := workcalc.ParseClock(at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				now = c.On(now)
			}

			live := workcalc.ComputeLiveStatus(now, o.prefs)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, heading("Live Status"))
			fmt.Fprintln(out, mutedStyle.Render(now.Format("Monday, 02 January 2006 03:04 PM")))
			fmt.Fprintln(out, labelValue("Office in", o.prefs.ClockIn.Kitchen()))
			fmt.Fprintln(out, labelValue("Breaks", workcalc.SplitMinutes(float64(live.TotalBreakMinutes))))
			fmt.Fprintln(out, labelValue("Gross", workcalc.SplitMinutes(live.GrossMinutes)))
			fmt.Fprintln(out, labelValue("Net", fmt.Sprintf("%s (%.2f hr)", workcalc.SplitMinutes(live.NetMinutes), live.NetHours)))
			if live.Overtime() {
				fmt.Fprintln(out, labelValue("Overtime", goodStyle.Render(live.Balance().String())))
			} else {
				fmt.Fprintln(out, labelValue("Remaining", badStyle.Render(live.Balance().String())))
			}
			fmt.Fprintln(out, labelValue("Leave at", live.TargetExit.Format("03:04 PM")))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "evaluate as if it were HH:MM today")
	return cmd
}
