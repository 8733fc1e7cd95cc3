package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultField is the field name used when none is configured.
const DefaultField = "text"

// ValidationError describes a single failed rule with translation support.
type ValidationError struct {
	Field             string
	Message           string
	Reason            Reason
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects every failed rule of a validation run in evaluation order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed as the cause of any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(reason Reason) bool {
	for _, err := range ve {
		if err.Reason == reason {
			return true
		}
	}
	return false
}

// First returns the error of the first rule that failed.
func (ve ValidationErrors) First() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[0], true
}

func (ve ValidationErrors) Reasons() []Reason {
	reasons := make([]Reason, 0, len(ve))
	for _, err := range ve {
		reasons = append(reasons, err.Reason)
	}
	return reasons
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translator renders a translation key for a language.
// *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Translate renders every error through tr. Translation values are passed as
// key/value pairs sorted by key.
func (ve ValidationErrors) Translate(tr Translator, lang string) []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		if tr == nil {
			messages = append(messages, err.Message)
			continue
		}
		keys := make([]string, 0, len(err.TranslationValues))
		for k := range err.TranslationValues {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		args := make([]string, 0, len(keys)*2)
		for _, k := range keys {
			args = append(args, k, fmt.Sprint(err.TranslationValues[k]))
		}
		messages = append(messages, tr.T(lang, err.TranslationKey, args...))
	}
	return messages
}

// Rule is a single named predicate over the text under validation.
type Rule struct {
	Reason  Reason
	Message string
	Values  map[string]any
	Check   func(text string) bool
}

func (r Rule) failure(field string) ValidationError {
	values := make(map[string]any, len(r.Values)+1)
	maps.Copy(values, r.Values)
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           r.Message,
		Reason:            r.Reason,
		TranslationKey:    r.Reason.TranslationKey(),
		TranslationValues: values,
	}
}

// Result is the outcome of a validation run: either valid, or invalid with the
// first failing reason.
type Result struct {
	failures ValidationErrors
}

func (r Result) Valid() bool {
	return len(r.failures) == 0
}

// Reason returns the first failing reason, or ReasonNone for a valid result.
func (r Result) Reason() Reason {
	if first, ok := r.failures.First(); ok {
		return first.Reason
	}
	return ReasonNone
}

// Failures returns every failing reason in evaluation order.
func (r Result) Failures() []Reason {
	return r.failures.Reasons()
}

// Err returns nil for a valid result and ValidationErrors otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return slices.Clone(r.failures)
}

// Apply evaluates rules against text in order under DefaultField.
func Apply(text string, rules ...Rule) Result {
	return evaluate(DefaultField, text, rules)
}

func evaluate(field, text string, rules []Rule) Result {
	var failures ValidationErrors
	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check(text) {
			failures.Add(rule.failure(field))
		}
	}
	return Result{failures: failures}
}
