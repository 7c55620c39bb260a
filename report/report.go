// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package report collects rule findings and writes them in the supported formats.
package report

import (
	"cmp"
	"path/filepath"
	"slices"
)

// Finding is one violation reported by a rule.
type Finding struct {
	Rule    string `json:"rule"          yaml:"rule"`
	File    string `json:"file"          yaml:"file"`
	Line    int    `json:"line"          yaml:"line"`
	Column  int    `json:"column"        yaml:"column"`
	Message string `json:"message"       yaml:"message"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Report is the result of one run.
type Report struct {
	// Version is the version of msglint that produced the report.
	Version string `json:"version" yaml:"version"`
	// Project describes the checked project, usually its git description.
	Project  string    `json:"project,omitempty" yaml:"project,omitempty"`
	Findings []Finding `json:"findings"          yaml:"findings"`
}

// New builds a report from findings gathered in any order.
//
// Unless fullPath is set, file names are made relative to root and use forward
// slashes. Findings are sorted by file, line, column and rule, and exact
// duplicates are dropped, as happens when a file belongs to both a package
// and its test variant.
func New(version, project string, findings []Finding, root string, fullPath bool) *Report {
	out := make([]Finding, 0, len(findings))

	for _, f := range findings {
		if !fullPath {
			f.File = relPath(root, f.File)
		}

		out = append(out, f)
	}

	slices.SortFunc(out, compareFindings)

	return &Report{
		Version:  version,
		Project:  project,
		Findings: slices.Compact(out),
	}
}

func compareFindings(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.File, b.File),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Rule, b.Rule),
		cmp.Compare(a.Message, b.Message),
	)
}

// relPath normalises file relative to root.
func relPath(root, file string) string {
	if root != "" {
		if rel, err := filepath.Rel(root, file); err == nil {
			file = rel
		}
	}

	return filepath.ToSlash(file)
}
