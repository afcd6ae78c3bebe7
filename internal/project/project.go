// Package project derives where a task list lives: the project root and the
// CSV filename built from a task title.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-git/v5"
)

const (
	// FileSuffix is appended to the sanitized title to form the filename.
	FileSuffix = " TO DO list.csv"

	// MaxTitleLen is the longest sanitized title, in runes.
	MaxTitleLen = 80

	fallbackTitle = "Task"
	edgeChars     = " .-_"
)

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	angleBracket = regexp.MustCompile(`[<>]`)
)

// SanitizeTitle turns a free-form title into a safe filename stem.
// Path separators become "-", whitespace runs collapse to one space, angle
// brackets are dropped, and leading/trailing " .-_" are trimmed. An empty
// result becomes "Task".
func SanitizeTitle(title string) string {
	s := strings.TrimSpace(title)
	s = strings.ReplaceAll(s, string(os.PathSeparator), "-")
	s = spaceRun.ReplaceAllString(s, " ")
	s = angleBracket.ReplaceAllString(s, "")
	s = strings.Trim(s, edgeChars)
	if s == "" {
		return fallbackTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLen {
		s = strings.TrimRight(string([]rune(s)[:MaxTitleLen]), edgeChars)
	}
	if s == "" {
		return fallbackTitle
	}
	return s
}

// FilePath returns the task-list path for title under root.
func FilePath(root, title string) string {
	return filepath.Join(root, SanitizeTitle(title)+FileSuffix)
}

// Root resolves the project root. An explicit root wins; otherwise the git
// worktree containing dir is used, falling back to dir itself.
func Root(explicit, dir string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	if root, err := GitRoot(abs); err == nil {
		return root, nil
	}
	return abs, nil
}

// GitRoot returns the top of the git worktree containing dir.
func GitRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}
