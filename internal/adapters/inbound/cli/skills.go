package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earcraft/earcraft/internal/adapters/outbound/tui"
	"github.com/earcraft/earcraft/internal/application"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

func newSkillsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Show your skill profile and what to practice next",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			svc := application.NewDashboardService(rt.catalog, rt.store, curriculum.DefaultTable())
			overview, err := svc.Overview(rt.packDir)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, overview)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSkills(overview.Skills))
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRecommendations(overview.Recommendations))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output overview as JSON")
	return cmd
}
