package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/earcraft/earcraft/internal/adapters/outbound/analysis"
	"github.com/earcraft/earcraft/internal/adapters/outbound/catalog"
	"github.com/earcraft/earcraft/internal/adapters/outbound/packinfo"
	"github.com/earcraft/earcraft/internal/adapters/outbound/progress"
)

var (
	version = "dev"
	commit  = "none"
)

const (
	envPack = "EARCRAFT_PACK"
	envData = "EARCRAFT_DATA"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earcraft",
		Short: "Practice synthesis and mixing by ear",
		Long:  "EarCraft grades sound-design and mixing submissions against a challenge pack, tracks per-skill progress, and recommends what to practice next.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load() // .env is optional
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("pack", "", "Challenge pack directory (default $EARCRAFT_PACK or .)")
	cmd.PersistentFlags().String("data", "", "Data directory for progress and caches (default $EARCRAFT_DATA or ~/.earcraft)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGradeCmd())
	cmd.AddCommand(newMixCmd())
	cmd.AddCommand(newSkillsCmd())
	cmd.AddCommand(newChallengesCmd())
	cmd.AddCommand(newProgressCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func packDirFrom(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("pack")
	if dir == "" {
		dir = os.Getenv(envPack)
	}
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving pack dir: %w", err)
	}
	return abs, nil
}

func dataDirFrom(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("data")
	if dir == "" {
		dir = os.Getenv(envData)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving data dir: %w", err)
		}
		dir = filepath.Join(home, ".earcraft")
	}
	return dir, nil
}

// runtime bundles the outbound adapters every command needs.
type runtime struct {
	packDir  string
	catalog  *catalog.YAMLLoader
	analyzer *analysis.Analyzer
	store    *progress.SQLiteStore
	packInfo *packinfo.GitPackInfo
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	packDir, err := packDirFrom(cmd)
	if err != nil {
		return nil, err
	}
	dataDir, err := dataDirFrom(cmd)
	if err != nil {
		return nil, err
	}
	store, err := progress.Open(filepath.Join(dataDir, "progress.db"))
	if err != nil {
		return nil, err
	}
	return &runtime{
		packDir:  packDir,
		catalog:  catalog.New(),
		analyzer: analysis.NewCached(filepath.Join(dataDir, "cache")),
		store:    store,
		packInfo: packinfo.New(),
	}, nil
}

func (r *runtime) close() {
	_ = r.store.Close()
}
