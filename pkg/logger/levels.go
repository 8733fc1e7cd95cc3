package logger

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Levels beyond the four built into slog.
const (
	LevelVerbose slog.Level = slog.LevelDebug - 4
	LevelWTF     slog.Level = slog.LevelError + 4
)

var allLevels = []slog.Level{
	LevelVerbose,
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
	LevelWTF,
}

// AllLevels returns every level the package knows, lowest first.
func AllLevels() []slog.Level {
	return slices.Clone(allLevels)
}

// LevelName renders the custom levels by name and defers to slog otherwise.
func LevelName(l slog.Level) string {
	switch l {
	case LevelVerbose:
		return "VERBOSE"
	case LevelWTF:
		return "WTF"
	default:
		return l.String()
	}
}

// ParseLevel accepts verbose, debug, info, warn, error and wtf in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return LevelVerbose, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "wtf":
		return LevelWTF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// replaceLevelAttr makes handlers print VERBOSE and WTF instead of DEBUG-4 and ERROR+4.
func replaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if l, ok := a.Value.Any().(slog.Level); ok {
		a.Value = slog.StringValue(LevelName(l))
	}
	return a
}

// LevelSet is an allow list of log levels. Records whose level is not in the
// set are dropped regardless of the minimum level. Safe for concurrent use.
type LevelSet struct {
	mu     sync.RWMutex
	levels map[slog.Level]struct{}
}

// NewLevelSet creates a set holding levels.
func NewLevelSet(levels ...slog.Level) *LevelSet {
	s := &LevelSet{levels: make(map[slog.Level]struct{}, len(levels))}
	s.Add(levels...)
	return s
}

func (s *LevelSet) Add(levels ...slog.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range levels {
		s.levels[l] = struct{}{}
	}
}

// All adds every known level.
func (s *LevelSet) All() {
	s.Add(allLevels...)
}

func (s *LevelSet) Remove(levels ...slog.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range levels {
		delete(s.levels, l)
	}
}

func (s *LevelSet) Contains(l slog.Level) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.levels[l]
	return ok
}
