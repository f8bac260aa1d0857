package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/earcraft/earcraft/internal/adapters/outbound/tui"
	"github.com/earcraft/earcraft/internal/application"
	"github.com/earcraft/earcraft/internal/domain"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

func newMixCmd() *cobra.Command {
	var (
		layersPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "mix <challenge-id>",
		Short: "Evaluate a mix submission",
		Long:  "Evaluate a snapshot of mixer layer states against a challenge's reference mix or goal conditions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			layers, err := readLayers(layersPath)
			if err != nil {
				return err
			}

			svc := application.NewMixService(rt.catalog, rt.store, rt.packInfo, curriculum.DefaultTable())
			outcome, err := svc.Evaluate(rt.packDir, args[0], layers)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, outcome)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMixReport(outcome.Challenge, outcome.Result))
			if len(outcome.Suggestions) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRecommendations(outcome.Suggestions))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&layersPath, "layers", "", "Mixer layer state YAML file")
	_ = cmd.MarkFlagRequired("layers")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}

func readLayers(path string) ([]domain.LayerState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layers: %w", err)
	}

	var snapshot struct {
		Layers []domain.LayerState `yaml:"layers"`
	}
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(snapshot.Layers) == 0 {
		return nil, fmt.Errorf("%s: no layers", path)
	}
	return snapshot.Layers, nil
}
