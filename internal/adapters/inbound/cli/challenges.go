package cli

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/spf13/cobra"

	"github.com/earcraft/earcraft/internal/adapters/outbound/tui"
	"github.com/earcraft/earcraft/internal/domain"
)

// Fuzzy matches below this similarity are noise, not typos.
const searchThreshold = 0.6

func newChallengesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "challenges [query]",
		Short: "List the pack's challenges",
		Long:  "List every challenge in the pack with completion markers. An optional query fuzzy-matches against challenge ids and titles.",
		Args:  cobra.MaximumNArgs(1),
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
			progress, err := rt.store.All()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				cat.Challenges = searchChallenges(cat.Challenges, args[0])
				if len(cat.Challenges) == 0 {
					return fmt.Errorf("no challenge matches %q", args[0])
				}
			}

			if jsonOutput {
				return renderJSON(cmd, cat)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderChallengeList(cat, progress))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output challenge list as JSON")
	return cmd
}

// searchChallenges keeps challenges whose id or title matches the query,
// either as a substring or by Jaro-Winkler similarity.
func searchChallenges(challenges []domain.Challenge, query string) []domain.Challenge {
	query = strings.ToLower(query)
	jw := metrics.NewJaroWinkler()

	var matched []domain.Challenge
	for _, challenge := range challenges {
		id := strings.ToLower(challenge.ID)
		title := strings.ToLower(challenge.Title)
		if strings.Contains(id, query) || strings.Contains(title, query) {
			matched = append(matched, challenge)
			continue
		}
		if strutil.Similarity(query, id, jw) >= searchThreshold ||
			strutil.Similarity(query, title, jw) >= searchThreshold {
			matched = append(matched, challenge)
		}
	}
	return matched
}
