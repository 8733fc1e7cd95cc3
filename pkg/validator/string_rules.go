package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinLength fails when text has fewer than min runes.
func MinLength(min int) Rule {
	return Rule{
		Reason:  ReasonMinimumLength,
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Values:  map[string]any{"min": min},
		Check: func(text string) bool {
			return utf8.RuneCountInString(text) >= min
		},
	}
}

// MaxLength fails when text has more than max runes.
func MaxLength(max int) Rule {
	return Rule{
		Reason:  ReasonMaximumLength,
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Values:  map[string]any{"max": max},
		Check: func(text string) bool {
			return utf8.RuneCountInString(text) <= max
		},
	}
}

func NonEmpty() Rule {
	return Rule{
		Reason:  ReasonNonEmpty,
		Message: "must not be empty",
		Check: func(text string) bool {
			return text != ""
		},
	}
}

// AllUpperCase fails when upper-casing text under tag changes it.
func AllUpperCase(tag language.Tag) Rule {
	return Rule{
		Reason:  ReasonAllUpperCase,
		Message: "must be all uppercase",
		Check: func(text string) bool {
			return cases.Upper(tag).String(text) == text
		},
	}
}

// AllLowerCase fails when lower-casing text under tag changes it.
func AllLowerCase(tag language.Tag) Rule {
	return Rule{
		Reason:  ReasonAllLowerCase,
		Message: "must be all lowercase",
		Check: func(text string) bool {
			return cases.Lower(tag).String(text) == text
		},
	}
}

// AtLeastOneUpperCase passes only if text contains an upper case letter, so
// empty text and text without letters fail.
func AtLeastOneUpperCase() Rule {
	return Rule{
		Reason:  ReasonAtLeastOneUpperCase,
		Message: "must contain at least one uppercase letter",
		Check: func(text string) bool {
			return strings.IndexFunc(text, unicode.IsUpper) >= 0
		},
	}
}

// AtLeastOneLowerCase passes only if text contains a lower case letter, so
// empty text and text without letters fail.
func AtLeastOneLowerCase() Rule {
	return Rule{
		Reason:  ReasonAtLeastOneLowerCase,
		Message: "must contain at least one lowercase letter",
		Check: func(text string) bool {
			return strings.IndexFunc(text, unicode.IsLower) >= 0
		},
	}
}

// StartsWithNonNumber fails when the first rune is a digit. Empty text has no
// first rune and fails as well.
func StartsWithNonNumber() Rule {
	return Rule{
		Reason:  ReasonStartsWithNonNumber,
		Message: "must not start with a number",
		Check: func(text string) bool {
			first, size := utf8.DecodeRuneInString(text)
			if size == 0 {
				return false
			}
			return !unicode.IsDigit(first)
		},
	}
}

func Contains(substring string) Rule {
	return Rule{
		Reason:  ReasonContains,
		Message: fmt.Sprintf("must contain %q", substring),
		Values:  map[string]any{"substring": substring},
		Check: func(text string) bool {
			return strings.Contains(text, substring)
		},
	}
}

func DoesNotContain(substring string) Rule {
	return Rule{
		Reason:  ReasonDoesNotContain,
		Message: fmt.Sprintf("must not contain %q", substring),
		Values:  map[string]any{"substring": substring},
		Check: func(text string) bool {
			return !strings.Contains(text, substring)
		},
	}
}

func StartsWith(prefix string) Rule {
	return Rule{
		Reason:  ReasonStartsWith,
		Message: fmt.Sprintf("must start with %q", prefix),
		Values:  map[string]any{"substring": prefix},
		Check: func(text string) bool {
			return strings.HasPrefix(text, prefix)
		},
	}
}

func EndsWith(suffix string) Rule {
	return Rule{
		Reason:  ReasonEndsWith,
		Message: fmt.Sprintf("must end with %q", suffix),
		Values:  map[string]any{"substring": suffix},
		Check: func(text string) bool {
			return strings.HasSuffix(text, suffix)
		},
	}
}
