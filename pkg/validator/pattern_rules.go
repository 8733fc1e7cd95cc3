package validator

import "regexp"

var (
	digitRegex        = regexp.MustCompile(`\d`)
	onlyDigitsRegex   = regexp.MustCompile(`^\d+$`)
	alphanumericRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

	// Same shape the Android platform accepts as an email address.
	emailRegex = regexp.MustCompile(
		`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
	)
)

func NoNumbers() Rule {
	return Rule{
		Reason:  ReasonNoNumbers,
		Message: "must not contain numbers",
		Check: func(text string) bool {
			return !digitRegex.MatchString(text)
		},
	}
}

// OnlyNumbers requires one or more ASCII digits and nothing else.
func OnlyNumbers() Rule {
	return Rule{
		Reason:  ReasonOnlyNumbers,
		Message: "must contain only numbers",
		Check: func(text string) bool {
			return onlyDigitsRegex.MatchString(text)
		},
	}
}

func AtLeastOneNumber() Rule {
	return Rule{
		Reason:  ReasonAtLeastOneNumber,
		Message: "must contain at least one number",
		Check: func(text string) bool {
			return digitRegex.MatchString(text)
		},
	}
}

// NoSpecialCharacter requires one or more ASCII letters or digits and nothing else.
func NoSpecialCharacter() Rule {
	return Rule{
		Reason:  ReasonNoSpecialCharacter,
		Message: "must contain only letters and numbers",
		Check: func(text string) bool {
			return alphanumericRegex.MatchString(text)
		},
	}
}

// AtLeastOneSpecialCharacter passes only if text contains a rune outside
// [A-Za-z0-9], so empty text fails.
func AtLeastOneSpecialCharacter() Rule {
	return Rule{
		Reason:  ReasonAtLeastOneSpecialCharacter,
		Message: "must contain at least one special character",
		Check: func(text string) bool {
			return text != "" && !alphanumericRegex.MatchString(text)
		},
	}
}

func Email() Rule {
	return Rule{
		Reason:  ReasonEmail,
		Message: "must be a valid email address",
		Check: func(text string) bool {
			return emailRegex.MatchString(text)
		},
	}
}
