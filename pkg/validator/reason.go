package validator

import "fmt"

// Reason identifies the rule that rejected a text.
// The zero value, ReasonNone, means no rule has failed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMinimumLength
	ReasonMaximumLength
	ReasonAtLeastOneUpperCase
	ReasonAtLeastOneLowerCase
	ReasonAllLowerCase
	ReasonAllUpperCase
	ReasonOnlyNumbers
	ReasonNonEmpty
	ReasonNoNumbers
	ReasonEmail
	ReasonAtLeastOneNumber
	ReasonStartsWithNonNumber
	ReasonNoSpecialCharacter
	ReasonAtLeastOneSpecialCharacter
	ReasonContains
	ReasonDoesNotContain
	ReasonStartsWith
	ReasonEndsWith
)

var reasonNames = [...]string{
	ReasonNone:                       "none",
	ReasonMinimumLength:              "minimum-length",
	ReasonMaximumLength:              "maximum-length",
	ReasonAtLeastOneUpperCase:        "at-least-one-uppercase",
	ReasonAtLeastOneLowerCase:        "at-least-one-lowercase",
	ReasonAllLowerCase:               "all-lowercase",
	ReasonAllUpperCase:               "all-uppercase",
	ReasonOnlyNumbers:                "only-numbers",
	ReasonNonEmpty:                   "non-empty",
	ReasonNoNumbers:                  "no-numbers",
	ReasonEmail:                      "email",
	ReasonAtLeastOneNumber:           "at-least-one-number",
	ReasonStartsWithNonNumber:        "starts-with-non-number",
	ReasonNoSpecialCharacter:         "no-special-character",
	ReasonAtLeastOneSpecialCharacter: "at-least-one-special-character",
	ReasonContains:                   "contains",
	ReasonDoesNotContain:             "does-not-contain",
	ReasonStartsWith:                 "starts-with",
	ReasonEndsWith:                   "ends-with",
}

var translationKeys = [...]string{
	ReasonNone:                       "validation.none",
	ReasonMinimumLength:              "validation.minimum_length",
	ReasonMaximumLength:              "validation.maximum_length",
	ReasonAtLeastOneUpperCase:        "validation.at_least_one_uppercase",
	ReasonAtLeastOneLowerCase:        "validation.at_least_one_lowercase",
	ReasonAllLowerCase:               "validation.all_lowercase",
	ReasonAllUpperCase:               "validation.all_uppercase",
	ReasonOnlyNumbers:                "validation.only_numbers",
	ReasonNonEmpty:                   "validation.non_empty",
	ReasonNoNumbers:                  "validation.no_numbers",
	ReasonEmail:                      "validation.email",
	ReasonAtLeastOneNumber:           "validation.at_least_one_number",
	ReasonStartsWithNonNumber:        "validation.starts_with_non_number",
	ReasonNoSpecialCharacter:         "validation.no_special_character",
	ReasonAtLeastOneSpecialCharacter: "validation.at_least_one_special_character",
	ReasonContains:                   "validation.contains",
	ReasonDoesNotContain:             "validation.does_not_contain",
	ReasonStartsWith:                 "validation.starts_with",
	ReasonEndsWith:                   "validation.ends_with",
}

// String returns the kebab-case identity of the reason, e.g. "no-numbers".
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("reason(%d)", int(r))
	}
	return reasonNames[r]
}

// TranslationKey returns the i18n key used to render the reason.
func (r Reason) TranslationKey() string {
	if r < 0 || int(r) >= len(translationKeys) {
		return "validation.unknown"
	}
	return translationKeys[r]
}

// ParseReason is the inverse of Reason.String.
func ParseReason(s string) (Reason, error) {
	for i, name := range reasonNames {
		if name == s {
			return Reason(i), nil
		}
	}
	return ReasonNone, fmt.Errorf("%w: %q", ErrUnknownReason, s)
}

// Reasons lists every failure reason in declaration order, ReasonNone excluded.
func Reasons() []Reason {
	out := make([]Reason, 0, len(reasonNames)-1)
	for i := 1; i < len(reasonNames); i++ {
		out = append(out, Reason(i))
	}
	return out
}
