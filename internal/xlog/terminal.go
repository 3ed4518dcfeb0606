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

package xlog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f looks like an interactive terminal, using
// the same mattn/go-isatty check go-ethereum's own terminal log formatter
// uses to decide whether to colorize.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var levelColor = map[Lvl]int{
	LvlCrit:  35, // magenta
	LvlError: 31, // red
	LvlWarn:  33, // yellow
	LvlInfo:  32, // green
	LvlDebug: 36, // cyan
	LvlTrace: 34, // blue
}

// terminalHandler renders records as "time level msg caller=... key=value ..."
// (keys sorted) and, on
// a genuine terminal, colorizes the level. Grounded on go-ethereum's
// TerminalFormat helper, trimmed to the fields this module's records
// actually carry.
type terminalHandler struct {
	mu     sync.Mutex
	wr     io.Writer
	color  bool
	loc    bool
}

// NewTerminalHandler wraps w, wrapping it through go-colorable first so
// ANSI codes render correctly on Windows consoles, matching go-ethereum's
// pairing of go-isatty (detection) with go-colorable (rendering).
func NewTerminalHandler(w io.Writer, useColor bool) Handler {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &terminalHandler{wr: w, color: useColor, loc: true}
}

func (h *terminalHandler) Log(r *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder
	ts := r.Time.Format("2006-01-02T15:04:05.000")
	lvl := r.Lvl.String()
	if h.color {
		fmt.Fprintf(&b, "%s \x1b[%dm%s\x1b[0m %s", ts, levelColor[r.Lvl], lvl, r.Msg)
	} else {
		fmt.Fprintf(&b, "%s %s %s", ts, lvl, r.Msg)
	}
	if h.loc {
		fmt.Fprintf(&b, " caller=%+v", r.Call)
	}
	m := pairs(r.Ctx)
	for _, k := range orderedKeys(m) {
		fmt.Fprintf(&b, " %s=%v", k, m[k])
	}
	b.WriteByte('\n')
	_, err := io.WriteString(h.wr, b.String())
	return err
}

// pairs turns the flat ctx slice into a key/value map for printing; a
// repeated key keeps its last value. The map itself is unordered:
// orderedKeys supplies the print order.
func pairs(ctx []interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		key := fmt.Sprint(ctx[i])
		m[key] = ctx[i+1]
	}
	return m
}

// orderedKeys renders ctx key order deterministically, so two log calls
// with the same key/value pairs produce byte-identical lines.
func orderedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
