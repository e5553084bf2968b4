package logger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Notifier delivers one alert message to an operator channel.
type Notifier interface {
	SendMessage(text string)
}

// SetupTelegramHandler wraps log so every record keeps flowing to the
// existing handler while records at or above min are also pushed to the
// notifier.
func SetupTelegramHandler(log *slog.Logger, notifier Notifier, min slog.Level) *slog.Logger {
	return slog.New(newFanout(log.Handler(), newTelegramHandler(notifier, min)))
}

type telegramHandler struct {
	notifier Notifier
	min      slog.Level
	attrs    []slog.Attr
	groups   []string
}

func newTelegramHandler(notifier Notifier, min slog.Level) *telegramHandler {
	return &telegramHandler{notifier: notifier, min: min}
}

func (h *telegramHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *telegramHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(record.Level.String())
	b.WriteString("] ")
	b.WriteString(record.Message)
	for _, attr := range h.attrs {
		h.writeAttr(&b, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&b, attr)
		return true
	})

	// Delivery must never block or fail the logging call.
	go h.notifier.SendMessage(b.String())
	return nil
}

func (h *telegramHandler) writeAttr(b *strings.Builder, attr slog.Attr) {
	b.WriteString("\n")
	for _, group := range h.groups {
		b.WriteString(group)
		b.WriteString(".")
	}
	b.WriteString(attr.Key)
	b.WriteString(": ")
	b.WriteString(attr.Value.String())
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanout(handlers ...slog.Handler) *fanoutHandler {
	return &fanoutHandler{handlers: handlers}
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}
