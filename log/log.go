// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

// Package log is a small leveled-logging shim, reconstructed from the
// call sites of the teacher's own (unexported-from-the-pack)
// "github.com/saferwall/pe/log" helper: a Logger interface any backend
// can satisfy, a Helper with Debug/Warn/Error convenience methods, a
// level filter, and a plain-text logger over any io.Writer. jetdb.File embeds a *Helper the
// same way pe.File embeds one, so callers can plug in their own Logger
// without jetdb depending on any particular logging library.
package log

import (
	"fmt"
	"io"
	"sync"
)

// Level orders log severities; FilterLevel drops anything below it.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal sink jetdb writes leveled, formatted messages
// to. Any logging library can be adapted to it with a one-method
// wrapper.
type Logger interface {
	Log(level Level, msg string)
}

// stdLogger writes "LEVEL msg\n" lines to an io.Writer.
type stdLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdLogger returns a Logger that writes plain leveled lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (s *stdLogger) Log(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s\n", level, msg)
}

// filter drops messages below a minimum level before forwarding.
type filter struct {
	next Logger
	min  Level
}

// FilterOption configures NewFilter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a message must meet to pass.
func FilterLevel(min Level) FilterOption {
	return func(f *filter) { f.min = min }
}

// NewFilter wraps next with a minimum-level gate.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, min: LevelWarn}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, msg string) {
	if level < f.min {
		return
	}
	f.next.Log(level, msg)
}

// Helper adds Printf-style convenience methods over a bare Logger, the
// way the teacher's pe.File calls pe.logger.Warnf/Debugf/Errorf.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...any) {
	if h == nil || h.logger == nil {
		return
	}
	if len(args) == 0 {
		h.logger.Log(level, format)
		return
	}
	h.logger.Log(level, fmt.Sprintf(format, args...))
}

func (h *Helper) Debug(msg string)                    { h.log(LevelDebug, msg) }
func (h *Helper) Debugf(format string, args ...any)    { h.log(LevelDebug, format, args...) }
func (h *Helper) Warn(msg string)                      { h.log(LevelWarn, msg) }
func (h *Helper) Warnf(format string, args ...any)     { h.log(LevelWarn, format, args...) }
func (h *Helper) Error(msg string)                     { h.log(LevelError, msg) }
func (h *Helper) Errorf(format string, args ...any)    { h.log(LevelError, format, args...) }
