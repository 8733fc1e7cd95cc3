package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultBoundary is the frame character used by Shout when none is given.
const DefaultBoundary = '*'

// Verbose logs msg at LevelVerbose.
func Verbose(ctx context.Context, log *slog.Logger, msg string, args ...any) {
	log.Log(ctx, LevelVerbose, msg, args...)
}

// WTF logs msg at LevelWTF, for conditions that should never happen.
func WTF(ctx context.Context, log *slog.Logger, msg string, args ...any) {
	log.Log(ctx, LevelWTF, msg, args...)
}

// Exception logs err at error level. Nil errors are ignored.
func Exception(ctx context.Context, log *slog.Logger, err error) {
	if err == nil {
		return
	}
	log.LogAttrs(ctx, slog.LevelError, "exception", Error(err))
}

// JSON logs payload indented by four spaces at debug level. A malformed
// payload is logged at error level instead.
func JSON(ctx context.Context, log *slog.Logger, payload string) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(payload), "", "    "); err != nil {
		log.LogAttrs(ctx, slog.LevelError, "malformed JSON payload", Error(err))
		return
	}
	log.Log(ctx, slog.LevelDebug, buf.String())
}

// Shout logs message framed by a box of boundary runes at debug level.
func Shout(ctx context.Context, log *slog.Logger, message string, boundary rune) {
	log.Log(ctx, slog.LevelDebug, Box(message, boundary))
}

// Box frames every line of message, centred, in a box drawn with boundary.
// A zero boundary falls back to DefaultBoundary.
func Box(message string, boundary rune) string {
	if boundary == 0 {
		boundary = DefaultBoundary
	}
	lines := strings.Split(message, "\n")

	widest := 0
	for _, line := range lines {
		widest = max(widest, utf8.RuneCountInString(line))
	}

	// frame width is the widest line plus five columns of padding on each side
	width := widest + 12
	edge := strings.Repeat(string(boundary), width)
	blank := string(boundary) + strings.Repeat(" ", width-2) + string(boundary)

	var b strings.Builder
	b.WriteString(edge)
	b.WriteByte('\n')
	b.WriteString(blank)
	b.WriteByte('\n')
	for _, line := range lines {
		diff := widest - utf8.RuneCountInString(line)
		right := diff / 2
		left := diff - right
		b.WriteRune(boundary)
		b.WriteString(strings.Repeat(" ", 5+left))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", 5+right))
		b.WriteRune(boundary)
		b.WriteByte('\n')
	}
	b.WriteString(blank)
	b.WriteByte('\n')
	b.WriteString(edge)
	return b.String()
}
