package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/workday/internal/workcalc"
)

func newSetCmd(o *options) *cobra.Command {
	var (
		in, exit         string
		teaMin, lunchMin int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change and save preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			p := o.prefs
			changed := false

			if flags.Changed("in") {
				c, err := workcalc.ParseClock(in)
				if err != nil {
					return fmt.Errorf("--in: %w", err)
				}
				p.ClockIn, changed = c, true
			}
			if flags.Changed("exit") {
				c, err := workcalc.ParseClock(exit)
				if err != nil {
					return fmt.Errorf("--exit: %w", err)
				}
				p.PlannedExit, changed = c, true
			}
			if flags.Changed("tea") {
				p.TeaBreak, changed = teaMin, true
			}
			if flags.Changed("lunch") {
				p.LunchBreak, changed = lunchMin, true
			}
			if !changed {
				return errors.New("nothing to set: use --in, --exit, --tea or --lunch")
			}
			if err := p.Validate(); err != nil {
				return err
			}
			if err := o.save(p); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, goodStyle.Render(iconDone+" Preferences saved"))
			fmt.Fprintln(out, labelValue("Office in", p.ClockIn.Kitchen()))
			fmt.Fprintln(out, labelValue("Planned exit", p.PlannedExit.Kitchen()))
			fmt.Fprintln(out, labelValue("Tea break", fmt.Sprintf("%d min", p.TeaBreak)))
			fmt.Fprintln(out, labelValue("Lunch break", fmt.Sprintf("%d min", p.LunchBreak)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in, "in", "", "office-in time (HH:MM)")
	f.StringVar(&exit, "exit", "", "planned exit time (HH:MM)")
	f.IntVar(&teaMin, "tea", 0, "tea break in minutes (0-90)")
	f.IntVar(&lunchMin, "lunch", 0, "lunch break in minutes (0-90)")
	return cmd
}
