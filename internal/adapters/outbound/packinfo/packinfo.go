package packinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitPackInfo implements domain.PackInfo using go-git. Challenge packs are
// distributed as git repositories, so the HEAD commit identifies the exact
// pack content a score was earned against.
type GitPackInfo struct{}

func New() *GitPackInfo {
	return &GitPackInfo{}
}

// Version returns the short HEAD commit hash of the pack repository.
func (g *GitPackInfo) Version(packDir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(packDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening pack repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String()[:7], nil
}
