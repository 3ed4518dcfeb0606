// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package xlog is the CLI/cache-layer logger for this module. core/vm stays
// silent — it is a pure function library — and so is the two-tier cache;
// the CLI commands, including the batch and watch loops, log through here. The shape (Logger interface,
// swappable Handler, package-level Root) follows go-ethereum's own
// core/../log package; the terminal formatting is rebuilt on top of
// go-stack and the mattn isatty/colorable pair instead of glog, which is a
// poor fit for a short-lived CLI process.
package xlog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-stack/stack"
)

// Lvl mirrors go-ethereum's log15-derived level enum.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlTrace:
		return "trce"
	case LvlDebug:
		return "dbug"
	case LvlInfo:
		return "info"
	case LvlWarn:
		return "warn"
	case LvlError:
		return "eror"
	case LvlCrit:
		return "crit"
	default:
		return "unkn"
	}
}

// LvlFromString parses a level name from a CLI flag or config file.
func LvlFromString(s string) (Lvl, error) {
	switch s {
	case "trace", "trce":
		return LvlTrace, nil
	case "debug", "dbug":
		return LvlDebug, nil
	case "info":
		return LvlInfo, nil
	case "warn":
		return LvlWarn, nil
	case "error", "eror":
		return LvlError, nil
	case "crit":
		return LvlCrit, nil
	default:
		return LvlInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// Record is what a Logger hands its Handler.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
	Call stack.Call
}

// Handler writes a Record somewhere.
type Handler interface {
	Log(r *Record) error
}

// Logger is the leveled, contextual logger interface used throughout the
// CLI and cache layers.
type Logger interface {
	New(ctx ...interface{}) Logger
	SetHandler(h Handler)
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type swapHandler struct {
	mu sync.RWMutex
	h  Handler
}

func (s *swapHandler) Log(r *Record) error {
	s.mu.RLock()
	h := s.h
	s.mu.RUnlock()
	if h == nil {
		return nil
	}
	return h.Log(r)
}

func (s *swapHandler) Swap(h Handler) {
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

// New returns a root logger writing to the default terminal handler.
func New(ctx ...interface{}) Logger {
	l := &logger{h: new(swapHandler)}
	l.h.Swap(defaultHandler())
	return l.New(ctx...)
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{h: l.h, ctx: newContext(l.ctx, ctx)}
	return child
}

func (l *logger) SetHandler(h Handler) { l.h.Swap(h) }

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  newContext(l.ctx, ctx),
		Call: stack.Caller(2),
	}
	_ = l.h.Log(r)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(msg, LvlCrit, ctx) }

func newContext(prefix, suffix []interface{}) []interface{} {
	normalizedSuffix := normalize(suffix)
	newCtx := make([]interface{}, len(prefix)+len(normalizedSuffix))
	n := copy(newCtx, prefix)
	copy(newCtx[n:], normalizedSuffix)
	return newCtx
}

func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil, "xlog: odd number of arguments")
		ctx[len(ctx)-2], ctx[len(ctx)-1] = ctx[len(ctx)-1], ctx[len(ctx)-2]
	}
	return ctx
}

var (
	rootMu sync.Mutex
	root   Logger = New()
)

// Root returns the package-level default logger.
func Root() Logger {
	rootMu.Lock()
	defer rootMu.Unlock()
	return root
}

// SetRootHandler replaces the handler used by Root().
func SetRootHandler(h Handler) {
	Root().SetHandler(h)
}

func defaultHandler() Handler {
	return NewTerminalHandler(os.Stderr, IsTerminal(os.Stderr))
}
