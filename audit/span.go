// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"runtime/trace"
	"time"

	"github.com/rs/zerolog/log"
)

// Span records the check of one package.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration

	Package  string
	Files    int
	Findings int
	Error    error
}

// Begin starts timing the span and opens a runtime/trace task for it.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "check."+span.Package)

	return ctx
}

// End stops the span. Calling End more than once has no effect.
func (span *Span) End() {
	if span.task != nil {
		span.duration = time.Since(span.start)
		span.task.End()

		span.task = nil
	}
}

// Duration returns the time between Begin and End.
func (span *Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span at debug level.
func (span *Span) Log() {
	event := log.Debug()

	event.Str("sys", "msglint")
	event.Str("package", span.Package)
	event.Int("files", span.Files)
	event.Int("findings", span.Findings)
	event.Dur("dur", span.duration)

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Msg("Checked package")
}
