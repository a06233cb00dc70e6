package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ModuleKey is the attribute that names the component a record comes from.
const ModuleKey = "module"

const timeLayout = "2006-01-02 15:04:05,000"

// BracketHandler writes records as
//
//	[2006-01-02 15:04:05,000: INFO: validator: Data loaded from: data.csv rows=3]
//
// The module attribute is lifted into the third field; every other attribute is
// appended to the message as key=value.
type BracketHandler struct {
	opts   slog.HandlerOptions
	module string
	attrs  []slog.Attr
	groups []string

	mu *sync.Mutex
	w  io.Writer
}

// NewBracketHandler creates a BracketHandler writing to w.
func NewBracketHandler(w io.Writer, opts *slog.HandlerOptions) *BracketHandler {
	h := &BracketHandler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *BracketHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *BracketHandler) Handle(_ context.Context, r slog.Record) error {
	module := h.module
	var extra []string

	appendAttr := func(groups []string, a slog.Attr) {
		if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
			a = h.opts.ReplaceAttr(groups, a)
		}
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			return
		}
		if len(groups) == 0 && a.Key == ModuleKey {
			module = a.Value.String()
			return
		}
		extra = appendKV(extra, groups, a)
	}

	for _, a := range h.attrs {
		appendAttr(nil, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(h.groups, a)
		return true
	})

	if module == "" {
		module = "main"
	}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(ts.Format(timeLayout))
	b.WriteString(": ")
	b.WriteString(r.Level.String())
	b.WriteString(": ")
	b.WriteString(module)
	b.WriteString(": ")
	b.WriteString(r.Message)
	for _, kv := range extra {
		b.WriteString(" ")
		b.WriteString(kv)
	}
	b.WriteString("]\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *BracketHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if len(h.groups) == 0 && a.Key == ModuleKey {
			clone.module = a.Value.String()
			continue
		}
		if len(h.groups) > 0 {
			a = slog.Group(strings.Join(h.groups, "."), a)
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *BracketHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func appendKV(dst []string, groups []string, a slog.Attr) []string {
	if a.Value.Kind() == slog.KindGroup {
		sub := append(append([]string{}, groups...), a.Key)
		if a.Key == "" {
			sub = groups
		}
		for _, ga := range a.Value.Group() {
			dst = appendKV(dst, sub, ga)
		}
		return dst
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(dst, fmt.Sprintf("%s=%v", key, a.Value.Any()))
}
