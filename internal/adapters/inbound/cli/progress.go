package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earcraft/earcraft/internal/adapters/outbound/tui"
)

func newProgressCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show per-challenge progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			cat, err := rt.catalog.Load(rt.packDir)
			if err != nil {
				return err
			}
			all, err := rt.store.All()
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, all)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProgress(cat, all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output progress as JSON")
	return cmd
}
