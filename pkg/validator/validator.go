package validator

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/liteutils/pkg/logger"
)

// Validator collects rules for a single text and evaluates them on Check or
// Validate. A Validator is not safe for concurrent use.
type Validator struct {
	text      string
	field     string
	lang      language.Tag
	rules     []Rule
	minLength int
	maxLength int // negative means unbounded
	onSuccess func()
	onFailure func(Reason)
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithField sets the field name reported in ValidationError.
func WithField(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.field = name
		}
	}
}

// WithLogger logs one debug record per validation run.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithLanguage sets the language used by AllUpperCase and AllLowerCase.
func WithLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		v.lang = tag
	}
}

// WithConfig applies field and language defaults loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		WithField(cfg.Field)(v)
		v.lang = cfg.LanguageTag()
	}
}

// New creates a Validator for text. Bounds default to zero and unbounded.
func New(text string, opts ...Option) *Validator {
	v := &Validator{
		text:      text,
		field:     DefaultField,
		lang:      language.Und,
		maxLength: -1,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Text returns the text under validation.
func (v *Validator) Text() string {
	return v.text
}

// Custom appends a caller-defined rule.
func (v *Validator) Custom(rule Rule) *Validator {
	v.rules = append(v.rules, rule)
	return v
}

// MinimumLength sets the lower length bound. The last call wins.
func (v *Validator) MinimumLength(n int) *Validator {
	v.minLength = max(n, 0)
	return v
}

// MaximumLength sets the upper length bound. The last call wins; a negative
// value removes the bound.
func (v *Validator) MaximumLength(n int) *Validator {
	v.maxLength = n
	return v
}

func (v *Validator) NonEmpty() *Validator {
	return v.Custom(NonEmpty())
}

func (v *Validator) NoNumbers() *Validator {
	return v.Custom(NoNumbers())
}

func (v *Validator) OnlyNumbers() *Validator {
	return v.Custom(OnlyNumbers())
}

func (v *Validator) AllUpperCase() *Validator {
	return v.Custom(AllUpperCase(v.lang))
}

func (v *Validator) AllLowerCase() *Validator {
	return v.Custom(AllLowerCase(v.lang))
}

func (v *Validator) AtLeastOneLowerCase() *Validator {
	return v.Custom(AtLeastOneLowerCase())
}

func (v *Validator) AtLeastOneUpperCase() *Validator {
	return v.Custom(AtLeastOneUpperCase())
}

func (v *Validator) AtLeastOneNumber() *Validator {
	return v.Custom(AtLeastOneNumber())
}

func (v *Validator) StartsWithNonNumber() *Validator {
	return v.Custom(StartsWithNonNumber())
}

func (v *Validator) NoSpecialCharacter() *Validator {
	return v.Custom(NoSpecialCharacter())
}

func (v *Validator) AtLeastOneSpecialCharacter() *Validator {
	return v.Custom(AtLeastOneSpecialCharacter())
}

func (v *Validator) Email() *Validator {
	return v.Custom(Email())
}

func (v *Validator) Contains(s string) *Validator {
	return v.Custom(Contains(s))
}

func (v *Validator) DoesNotContain(s string) *Validator {
	return v.Custom(DoesNotContain(s))
}

func (v *Validator) StartsWith(s string) *Validator {
	return v.Custom(StartsWith(s))
}

func (v *Validator) EndsWith(s string) *Validator {
	return v.Custom(EndsWith(s))
}

// AddSuccessCallback registers the handler Validate calls on success.
// A second call replaces the first.
func (v *Validator) AddSuccessCallback(fn func()) *Validator {
	v.onSuccess = fn
	return v
}

// AddErrorCallback registers the handler Validate calls with the first failing
// reason. A second call replaces the first.
func (v *Validator) AddErrorCallback(fn func(Reason)) *Validator {
	v.onFailure = fn
	return v
}

// Check evaluates the chained rules in registration order, then the minimum
// and maximum length bounds. Callbacks are not invoked.
func (v *Validator) Check() Result {
	rules := make([]Rule, 0, len(v.rules)+2)
	rules = append(rules, v.rules...)
	rules = append(rules, MinLength(v.minLength))
	if v.maxLength >= 0 {
		rules = append(rules, MaxLength(v.maxLength))
	}

	res := evaluate(v.field, v.text, rules)
	v.logger.Debug("text validated",
		logger.Field(v.field),
		logger.Valid(res.Valid()),
		logger.Reason(res.Reason()),
		logger.Rules(len(rules)),
	)
	return res
}

// Validate runs Check, invokes the matching callback and reports validity.
func (v *Validator) Validate() bool {
	res := v.Check()
	if res.Valid() {
		if v.onSuccess != nil {
			v.onSuccess()
		}
		return true
	}
	if v.onFailure != nil {
		v.onFailure(res.Reason())
	}
	return false
}
