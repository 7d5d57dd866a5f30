package cmd

import (
	git "github.com/go-git/go-git/v5"
)

// repoRoot resolves the enclosing git worktree root for dir, falling back
// to dir itself outside a repository. Config discovery and default working
// directories anchor there, matching where a project's rc file lives.
func repoRoot(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return dir
	}
	wt, err := repo.Worktree()
	if err != nil {
		return dir
	}
	return wt.Filesystem.Root()
}
