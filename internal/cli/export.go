package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/workday/internal/export"
)

func newExportCmd(o *options) *cobra.Command {
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current breakdown to CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "csv" && format != "json" {
				return fmt.Errorf("--format must be csv or json, got %q", format)
			}

			snap := export.Take(o.now(), o.prefs)
			if outPath == "" {
				outPath = fmt.Sprintf("workday-%s.%s", snap.Live.Now.Format("2006-01-02"), format)
			}

			var err error
			if format == "csv" {
				err = export.ToCSV(snap, outPath)
			} else {
				err = export.ToJSON(snap, outPath)
			}
			if err != nil {
				o.logger.Warn("Export failed", "path", outPath, "error", err)
				return err
			}

			o.logger.Info("Exported breakdown", "path", outPath, "format", format)
			fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render(iconDone+" Exported to "+outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "csv or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default workday-<date>.<format>)")
	return cmd
}
