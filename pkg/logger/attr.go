package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Reason records a validation failure reason under the key "reason".
// If r is nil, it returns an empty Attr.
func Reason(r fmt.Stringer) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	return slog.String("reason", r.String())
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Rules records how many rules a validation run evaluated under the key "rules".
func Rules(n int) slog.Attr {
	return slog.Int("rules", n)
}
