// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command nooffset runs the no-offset rule as a standalone vet-style checker.
//
// Besides the usual analysis flags it accepts -config, -ignore-tag,
// -function-names, -component-names and -exclude-message-decl-calls.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"codeberg.org/pixivfe/msglint/audit"
	"codeberg.org/pixivfe/msglint/rules/nooffset"
)

func main() {
	audit.SetDefaultLogger()
	singlechecker.Main(nooffset.Analyzer)
}
