// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package rules

import (
	"errors"
	"go/ast"
	"go/types"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/msglint/extract"
	"codeberg.org/pixivfe/msglint/messageformat"
)

// ReportFunc receives one report per violating message: the expression holding
// the message literal and the violation's fixed message.
type ReportFunc func(node ast.Node, message string)

// Checker runs a Rule over the messages found in Go syntax trees.
//
// A Checker holds no mutable state, so one Checker per package may run
// concurrently with others sharing the same Settings.
type Checker struct {
	Rule     *Rule
	Settings extract.Settings
	// Info may be nil; see extract.Messages.
	Info   *types.Info
	Report ReportFunc
}

// Check parses and verifies every message attributable to n.
//
// Candidates without a constant message or a locatable literal are skipped.
// Messages that fail to parse are not this rule's concern and are only logged.
// Each violating candidate is reported exactly once.
func (c *Checker) Check(n ast.Node) {
	c.check(n, extract.Options{})
}

// checkCall is Check for dispatch tables without a composite literal handler.
func (c *Checker) checkCall(n ast.Node) {
	c.check(n, extract.Options{CallsOnly: true})
}

func (c *Checker) check(n ast.Node, opts extract.Options) {
	for _, cand := range extract.MessagesWith(n, c.Info, c.Settings, opts) {
		if cand.Descriptor.DefaultMessage == "" || cand.Node == nil {
			continue
		}

		msg, err := messageformat.Parse(cand.Descriptor.DefaultMessage, messageformat.ParseOptions{
			IgnoreTag: c.Settings.IgnoreTag,
		})
		if err != nil {
			log.Debug().
				Str("sys", "rules").
				Str("rule", c.Rule.Name).
				Err(err).
				Msg("Skipping message with invalid syntax")

			continue
		}

		err = c.Rule.Verify(msg)
		if err == nil {
			continue
		}

		var violation *Violation
		if !errors.As(err, &violation) {
			log.Debug().
				Str("sys", "rules").
				Str("rule", c.Rule.Name).
				Err(err).
				Msg("Rule returned an unexpected error")

			continue
		}

		c.Report(cand.Node, violation.Error())
	}
}

// NodeKind tags the syntax node types a Checker can dispatch on.
type NodeKind int

// Dispatchable node kinds.
const (
	NodeCall NodeKind = iota + 1
	NodeCompositeLit
)

func nodeKind(n ast.Node) NodeKind {
	switch n.(type) {
	case *ast.CallExpr:
		return NodeCall
	case *ast.CompositeLit:
		return NodeCompositeLit
	}

	return 0
}

// Visitors maps node kinds to handlers.
type Visitors map[NodeKind]func(ast.Node)

// Capabilities describes what the files being checked offer beyond plain Go.
type Capabilities struct {
	// TemplateBody is set when some files were generated from templ templates.
	TemplateBody bool
}

// DetectCapabilities inspects files once, before any check runs.
func DetectCapabilities(files []*ast.File) Capabilities {
	for _, f := range files {
		if IsTemplGenerated(f) {
			return Capabilities{TemplateBody: true}
		}
	}

	return Capabilities{}
}

// IsTemplGenerated reports whether f carries templ's generated-code header.
func IsTemplGenerated(f *ast.File) bool {
	if !ast.IsGenerated(f) {
		return false
	}

	for _, cg := range f.Comments {
		if cg.Pos() > f.Package {
			break
		}

		if strings.Contains(cg.Text(), "generated by templ") {
			return true
		}
	}

	return false
}

// visitors returns the dispatch tables for hand-written Go and, when the
// template capability is present, for template output. Template output only
// dispatches calls, which then answer for the component literals they wrap.
func (c *Checker) visitors(caps Capabilities) (script, template Visitors) {
	script = Visitors{
		NodeCall:         c.Check,
		NodeCompositeLit: c.Check,
	}

	if caps.TemplateBody {
		template = Visitors{
			NodeCall: c.checkCall,
		}
	}

	return script, template
}

// Walk checks every file, selecting the dispatch table once per file.
func (c *Checker) Walk(files []*ast.File) {
	script, template := c.visitors(DetectCapabilities(files))

	for _, f := range files {
		table := script
		if template != nil && IsTemplGenerated(f) {
			table = template
		}

		ast.Inspect(f, func(n ast.Node) bool {
			if visit, ok := table[nodeKind(n)]; ok {
				visit(n)
			}

			return true
		})
	}
}
