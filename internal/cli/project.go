package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/workday/internal/workcalc"
)

func newProjectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "project [HH:MM]",
		Short: "Project the balance for a planned exit time",
		Long:  "Project net hours for leaving at HH:MM (default: the stored planned exit). An exit at or before the office-in time is taken as the next day.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exit := o.prefs.PlannedExit
			if len(args) == 1 {
				c, err := workcalc.ParseClock(args[0])
				if err != nil {
					return err
				}
				exit = c
			}

			proj := workcalc.ComputeProjection(o.prefs.ClockIn, exit, o.prefs.TotalBreakMinutes(), workcalc.TargetHours)
			out := cmd.OutOrStdout()

			title := fmt.Sprintf("Projection if leaving at %s", exit.Kitchen())
			if proj.Wrapped {
				title += " (next day)"
			}
			fmt.Fprintln(out, heading(title))
			fmt.Fprintln(out, labelValue("Office in", o.prefs.ClockIn.Kitchen()))
			fmt.Fprintln(out, labelValue("Gross", workcalc.SplitMinutes(float64(proj.GrossMinutes))))
			fmt.Fprintln(out, labelValue("Breaks", workcalc.SplitMinutes(float64(proj.TotalBreakMinutes))))
			fmt.Fprintln(out, labelValue("Net", workcalc.SplitHours(proj.NetHours)))
			if proj.Overtime() {
				fmt.Fprintln(out, labelValue("Overtime", goodStyle.Render(proj.Balance().String())))
			} else {
				fmt.Fprintln(out, labelValue("Short by", badStyle.Render(proj.Balance().String())))
			}
			return nil
		},
	}
}
