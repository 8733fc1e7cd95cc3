package i18n

import (
	"context"
	"strings"
)

// Parser decodes translation file content into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser for filename's extension, or nil.
func NewParserForFile(filename string) Parser {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return nil
	}

	switch strings.ToLower(filename[idx+1:]) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// byLanguage checks that every top-level value is a map of translations.
func byLanguage(data map[string]any) (map[string]map[string]any, bool) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		result[lang] = transMap
	}
	return result, true
}
