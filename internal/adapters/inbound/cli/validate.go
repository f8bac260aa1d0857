package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earcraft/earcraft/internal/adapters/outbound/catalog"
	"github.com/earcraft/earcraft/internal/adapters/outbound/packscan"
	"github.com/earcraft/earcraft/internal/application"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a challenge pack",
		Long:  "Check that the pack manifest parses, every referenced audio file is present, and nothing unreferenced is shipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			packDir, err := packDirFrom(cmd)
			if err != nil {
				return err
			}

			svc := application.NewValidateService(catalog.New(), packscan.New())
			report, err := svc.Validate(packDir)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if report.Pack != "" {
					fmt.Fprintf(out, "pack %s: %d challenges\n", report.Pack, report.Challenges)
				}
				for _, e := range report.Errors {
					fmt.Fprintf(out, "error: %s\n", e)
				}
				for _, w := range report.Warnings {
					fmt.Fprintf(out, "warning: %s\n", w)
				}
				if report.Valid() {
					fmt.Fprintln(out, "pack is valid")
				}
			}

			if !report.Valid() {
				return fmt.Errorf("pack has %d error(s)", len(report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	return cmd
}
