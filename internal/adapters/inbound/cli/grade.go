package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/earcraft/earcraft/internal/adapters/outbound/tui"
	"github.com/earcraft/earcraft/internal/application"
	"github.com/earcraft/earcraft/internal/domain"
	"github.com/earcraft/earcraft/internal/domain/curriculum"
)

func newGradeCmd() *cobra.Command {
	var (
		audioPath  string
		paramsPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "grade <challenge-id>",
		Short: "Grade a sound-design submission",
		Long:  "Compare a rendered submission against a challenge's reference sound and score how closely it matches.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			params, err := readSubmissionParams(paramsPath)
			if err != nil {
				return err
			}

			svc := application.NewGradeService(rt.catalog, rt.analyzer, rt.store, rt.packInfo, curriculum.DefaultTable())
			outcome, err := svc.Grade(application.GradeInput{
				PackDir:      rt.packDir,
				ChallengeID:  args[0],
				PlayerAudio:  audioPath,
				PlayerParams: params,
			})
			if err != nil {
				return fmt.Errorf("grading failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, outcome)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScoreCard(outcome.Challenge, outcome.Result, outcome.Progress))
			if len(outcome.Suggestions) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRecommendations(outcome.Suggestions))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&audioPath, "audio", "", "Rendered submission WAV file")
	cmd.Flags().StringVar(&paramsPath, "params", "", "Submission parameter YAML file")
	_ = cmd.MarkFlagRequired("audio")
	_ = cmd.MarkFlagRequired("params")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}

// submissionParams mirrors the catalog's parameter variants so a submission
// file uses the same shape as the pack it answers.
type submissionParams struct {
	Subtractive *domain.SynthParams    `yaml:"subtractive"`
	FM          *domain.FMParams       `yaml:"fm"`
	Additive    *domain.AdditiveParams `yaml:"additive"`
}

func readSubmissionParams(path string) (domain.SynthParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SynthParams{}, fmt.Errorf("reading params: %w", err)
	}

	var sub submissionParams
	if err := yaml.Unmarshal(data, &sub); err != nil {
		return domain.SynthParams{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	switch {
	case sub.Subtractive != nil:
		return sub.Subtractive.Comparable(), nil
	case sub.FM != nil:
		return sub.FM.Comparable(), nil
	case sub.Additive != nil:
		return sub.Additive.Comparable(), nil
	default:
		return domain.SynthParams{}, fmt.Errorf("%s: no parameter variant set", path)
	}
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
