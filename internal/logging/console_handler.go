package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const logTimestampLayout = "2006-01-02 15:04:05"

// prettyHandler writes one human-readable line per record:
//
//	2026-03-01 12:00:00 WARN [workflow] run=1b4e28ba – source skipped path=a.txt
//
// component and run_id are lifted into the header; run_id stays in the
// key/value tail for debug lines.
type prettyHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     slog.Leveler
	attrs     []slog.Attr
	groups    []string
	addSource bool
}

func newPrettyHandler(w io.Writer, level slog.Leveler, addSource bool) slog.Handler {
	return &prettyHandler{mu: &sync.Mutex{}, writer: w, level: level, addSource: addSource}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, record slog.Record) error {
	if !h.Enabled(context.Background(), record.Level) {
		return nil
	}

	fields := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	flattenAttrs(&fields, h.groups, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&fields, h.groups, attr)
		return true
	})

	var component, runID string
	tail := fields[:0]
	for _, f := range fields {
		switch {
		case f.key == FieldComponent:
			if component == "" {
				component = valueText(f.value, false)
			}
			continue
		case f.key == FieldRunID:
			if runID == "" {
				runID = valueText(f.value, false)
			}
			if record.Level >= slog.LevelInfo {
				continue
			}
		case f.key == "":
			continue
		}
		tail = append(tail, f)
	}

	var line strings.Builder
	h.writeHeader(&line, record, component, runID)
	for _, f := range tail {
		fmt.Fprintf(&line, " %s=%s", f.key, valueText(f.value, true))
	}
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, line.String())
	return err
}

func (h *prettyHandler) writeHeader(line *strings.Builder, record slog.Record, component, runID string) {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	line.WriteString(ts.In(time.Local).Format(logTimestampLayout))
	line.WriteString(" " + levelLabel(record.Level))
	if component != "" {
		line.WriteString(" [" + component + "]")
	}
	if short := shortRunID(runID); short != "" {
		line.WriteString(" run=" + short)
	}

	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}
	line.WriteString(" – " + msg)

	if h.addSource {
		if src := record.Source(); src != nil {
			fmt.Fprintf(line, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *prettyHandler) clone() *prettyHandler {
	clone := *h
	clone.attrs = slices.Clone(h.attrs)
	clone.groups = slices.Clone(h.groups)
	return &clone
}

// shortRunID keeps the first block of a UUID for console output.
func shortRunID(id string) string {
	id = strings.TrimSpace(id)
	head, _, _ := strings.Cut(id, "-")
	if head == "" {
		return id
	}
	return head
}

type kv struct {
	key   string
	value slog.Value
}

func flattenAttrs(dst *[]kv, prefix []string, attrs []slog.Attr) {
	for _, attr := range attrs {
		flattenAttr(dst, prefix, attr)
	}
}

// flattenAttr expands groups into dotted keys, e.g. source.path.
func flattenAttr(dst *[]kv, prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		next := prefix
		if attr.Key != "" {
			next = append(slices.Clone(prefix), attr.Key)
		}
		flattenAttrs(dst, next, value.Group())
		return
	}
	key := attr.Key
	if len(prefix) > 0 {
		key = strings.Join(prefix, ".") + "." + key
	}
	*dst = append(*dst, kv{key: key, value: value})
}
