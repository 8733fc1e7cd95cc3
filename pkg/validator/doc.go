// Package validator provides a fluent text validator: a builder that collects
// an ordered chain of string rules and evaluates them in one terminal call.
//
// Each exported rule function (NonEmpty, Email, Contains, ...) constructs a
// Rule value pairing a predicate with its failure Reason and translation
// metadata. The Validator methods of the same name append those rules to the
// chain; nothing is evaluated until Check or Validate is called.
//
// # Evaluation order
//
// Rules run in the order they were chained. The length bounds set with
// MinimumLength and MaximumLength run after every chained rule, minimum first,
// because the bounds may be set at any point of the chain and the last call
// wins. The first failing rule determines Result.Reason; every failure is
// still available through Result.Failures and Result.Err.
//
// # Usage
//
//	res := validator.New(password, validator.WithField("password")).
//	    AtLeastOneUpperCase().
//	    AtLeastOneLowerCase().
//	    AtLeastOneNumber().
//	    MinimumLength(8).
//	    Check()
//	if !res.Valid() {
//	    return res.Err()
//	}
//
// Callbacks are available for callers that prefer them:
//
//	ok := validator.New(input).
//	    Email().
//	    AddSuccessCallback(func() { submit() }).
//	    AddErrorCallback(func(r validator.Reason) { showError(r) }).
//	    Validate()
//
// # Error Handling
//
// Validation failures are never panics. Result.Err returns ValidationErrors,
// which matches ErrValidationFailed with errors.Is and can be rendered in any
// language through Translate together with the embedded Translations.
//
// StartsWithNonNumber fails on empty text instead of indexing past its end.
package validator
