// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FindProjectRoot attempts to find a stable root directory for source references.
// Preference order:
//  1. git toplevel directory
//  2. nearest parent directory that contains go.mod
//  3. wd itself
func FindProjectRoot(wd string) string {
	if root := gitTopLevel(wd); root != "" {
		return root
	}

	if root := nearestGoModDir(wd); root != "" {
		return root
	}

	return wd
}

// DetectVersion resolves a human-friendly version of the project in dir using
// git describe. Falls back to "dev" when git is unavailable or dir is not a
// git checkout.
func DetectVersion(dir string) string {
	cmd := exec.Command("git", "describe", "--tags", "--always", "--dirty")

	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

func gitTopLevel(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	cmd.Dir = wd

	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return ""
	}

	return filepath.Clean(root)
}

func nearestGoModDir(start string) string {
	dir := filepath.Clean(start)
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}

func fileExists(path string) bool {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return true
	}

	return false
}
