package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser reads documents shaped as `{"<lang>": {"<key>": "<value>"}}`.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result, ok := byLanguage(data)
	if !ok {
		return nil, fmt.Errorf("%w: every top-level key must map to translations", ErrFailedToParseJSON)
	}
	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
