package xlog_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/eoflabs/eof1validator/internal/xlog"
)

type recordingHandler struct {
	mu      sync.Mutex
	records []*xlog.Record
}

func (h *recordingHandler) Log(r *xlog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func TestLoggerWritesToHandler(t *testing.T) {
	h := &recordingHandler{}
	l := xlog.New()
	l.SetHandler(h)

	l.Info("hello", "key", "value")

	if len(h.records) != 1 {
		t.Fatalf("got %d records, want 1", len(h.records))
	}
	r := h.records[0]
	if r.Msg != "hello" {
		t.Errorf("Msg = %q, want hello", r.Msg)
	}
	if r.Lvl != xlog.LvlInfo {
		t.Errorf("Lvl = %v, want LvlInfo", r.Lvl)
	}
	if len(r.Ctx) != 2 || r.Ctx[0] != "key" || r.Ctx[1] != "value" {
		t.Errorf("Ctx = %v, want [key value]", r.Ctx)
	}
}

func TestChildLoggerInheritsContext(t *testing.T) {
	h := &recordingHandler{}
	l := xlog.New()
	l.SetHandler(h)

	child := l.New("component", "batch")
	child.Warn("oops")

	if len(h.records) != 1 {
		t.Fatalf("got %d records, want 1", len(h.records))
	}
	ctx := h.records[0].Ctx
	if len(ctx) != 2 || ctx[0] != "component" || ctx[1] != "batch" {
		t.Errorf("Ctx = %v, want [component batch]", ctx)
	}
}

func TestLvlFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    xlog.Lvl
		wantErr bool
	}{
		{"info", xlog.LvlInfo, false},
		{"debug", xlog.LvlDebug, false},
		{"trce", xlog.LvlTrace, false},
		{"nonsense", xlog.LvlInfo, true},
	}
	for _, tt := range tests {
		got, err := xlog.LvlFromString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("LvlFromString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("LvlFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLvlString(t *testing.T) {
	if got := xlog.LvlCrit.String(); got != "crit" {
		t.Errorf("LvlCrit.String() = %q, want crit", got)
	}
}

func TestTerminalHandlerDeterministicOrder(t *testing.T) {
	var b strings.Builder
	h := xlog.NewTerminalHandler(&nopFile{&b}, false)
	r := &xlog.Record{Msg: "m", Ctx: []interface{}{"z", 1, "a", 2}}
	if err := h.Log(r); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if strings.Index(out, "a=2") > strings.Index(out, "z=1") {
		t.Errorf("keys not rendered in sorted order: %q", out)
	}
}

// nopFile adapts an io.Writer to satisfy the io.Writer interface expected
// by NewTerminalHandler without going through *os.File (and thus without
// trying to colorable-wrap it).
type nopFile struct {
	w *strings.Builder
}

func (n *nopFile) Write(p []byte) (int, error) { return n.w.Write(p) }
