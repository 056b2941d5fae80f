// seehuhn.de/go/autohint - automatic hinting for PostScript fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package plog sets up the structured logger used by the command line tool.
//
// Informational messages go to one writer (normally stdout), warnings and
// errors go to another (normally stderr).
package plog

import (
	"context"
	"io"
	"log/slog"
)

// LevelDispatchHandler is a slog.Handler which passes records below
// [slog.LevelWarn] to one handler and all other records to a second one.
type LevelDispatchHandler struct {
	info slog.Handler
	warn slog.Handler
}

// NewLevelDispatchHandler creates a new handler.
func NewLevelDispatchHandler(info, warn slog.Handler) *LevelDispatchHandler {
	return &LevelDispatchHandler{info: info, warn: warn}
}

// Enabled implements the [slog.Handler] interface.
func (h *LevelDispatchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return h.warn.Enabled(ctx, level)
	}
	return h.info.Enabled(ctx, level)
}

// Handle implements the [slog.Handler] interface.
func (h *LevelDispatchHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		return h.warn.Handle(ctx, r)
	}
	return h.info.Handle(ctx, r)
}

// WithAttrs implements the [slog.Handler] interface.
func (h *LevelDispatchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LevelDispatchHandler{
		info: h.info.WithAttrs(attrs),
		warn: h.warn.WithAttrs(attrs),
	}
}

// WithGroup implements the [slog.Handler] interface.
func (h *LevelDispatchHandler) WithGroup(name string) slog.Handler {
	return &LevelDispatchHandler{
		info: h.info.WithGroup(name),
		warn: h.warn.WithGroup(name),
	}
}

// Config describes a logger.
type Config struct {
	Stdout, Stderr io.Writer

	// Verbose enables informational messages.
	Verbose bool

	// JSON selects JSON output instead of the text format.
	JSON bool
}

// New returns a logger which dispatches by level.
func New(cfg Config) *slog.Logger {
	infoLevel := slog.LevelWarn
	if cfg.Verbose {
		infoLevel = slog.LevelInfo
	}
	newHandler := func(w io.Writer, level slog.Level) slog.Handler {
		opt := &slog.HandlerOptions{Level: level}
		if cfg.JSON {
			return slog.NewJSONHandler(w, opt)
		}
		return slog.NewTextHandler(w, opt)
	}
	return slog.New(NewLevelDispatchHandler(
		newHandler(cfg.Stdout, infoLevel),
		newHandler(cfg.Stderr, slog.LevelWarn),
	))
}
