// Package validation implements declarative request-body schemas. A schema
// lists typed field rules; validating a raw JSON body either yields a
// normalized value (defaults applied, unknown fields stripped) or a single
// human-readable error naming the first violated constraint.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// Kind identifies the expected JSON type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStringSlice
)

// Format constrains string contents beyond length checks.
type Format int

const (
	FormatNone Format = iota
	FormatEmail
	FormatPhone
	FormatSlug
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,19}$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Field declares the rules for one top-level body field.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Default  any
	MinLen   int // inclusive; 0 means unset
	MaxLen   int // inclusive; 0 means unset
	Min      *float64
	Max      *float64
	Enum     []string
	Format   Format
}

// Schema validates one request body. Fields are checked in declared order
// and validation stops at the first violation.
type Schema struct {
	Fields []Field
	// RequireSome rejects bodies carrying none of the declared fields,
	// used by update schemas where an empty patch is meaningless.
	RequireSome bool
}

// Validate parses raw JSON and applies the field rules. The returned map
// contains only declared fields, with defaults filled in.
func (s Schema) Validate(raw []byte) (map[string]any, error) {
	input := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &input); err != nil {
			return nil, apperrors.NewValidationError("invalid request body")
		}
	}

	out := make(map[string]any, len(s.Fields))
	present := 0

	for _, f := range s.Fields {
		val, ok := input[f.Name]
		if !ok || val == nil {
			if f.Default != nil {
				out[f.Name] = f.Default
				continue
			}
			if f.Required {
				return nil, apperrors.NewValidationError(fmt.Sprintf("%s is required", f.Name))
			}
			continue
		}
		present++

		normalized, err := f.check(val)
		if err != nil {
			return nil, err
		}
		out[f.Name] = normalized
	}

	if s.RequireSome && present == 0 {
		return nil, apperrors.NewValidationError("at least one field is required")
	}
	return out, nil
}

// Bind validates raw JSON and decodes the normalized value into out, which
// must be a pointer to a struct whose json tags match the field names.
func (s Schema) Bind(raw []byte, out any) error {
	normalized, err := s.Validate(raw)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	return nil
}

func (f Field) check(val any) (any, error) {
	switch f.Kind {
	case KindString:
		str, ok := val.(string)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a string", f.Name))
		}
		return f.checkString(str)
	case KindInt:
		num, ok := val.(float64)
		if !ok || num != math.Trunc(num) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be an integer", f.Name))
		}
		return num, f.checkBounds(num)
	case KindFloat:
		num, ok := val.(float64)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", f.Name))
		}
		return num, f.checkBounds(num)
	case KindBool:
		b, ok := val.(bool)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a boolean", f.Name))
		}
		return b, nil
	case KindStringSlice:
		items, ok := val.([]any)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be an array of strings", f.Name))
		}
		strs := make([]string, 0, len(items))
		for _, item := range items {
			str, ok := item.(string)
			if !ok {
				return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be an array of strings", f.Name))
			}
			strs = append(strs, str)
		}
		if f.MaxLen > 0 && len(strs) > f.MaxLen {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must have at most %d items", f.Name, f.MaxLen))
		}
		return strs, nil
	}
	return nil, apperrors.NewInternalError(fmt.Errorf("unknown field kind %d", f.Kind))
}

func (f Field) checkString(str string) (any, error) {
	// Length bounds count characters, not bytes.
	runes := utf8.RuneCountInString(str)
	if f.MinLen > 0 && runes < f.MinLen {
		if f.MinLen == 1 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must not be empty", f.Name))
		}
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be at least %d characters", f.Name, f.MinLen))
	}
	if f.MaxLen > 0 && runes > f.MaxLen {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be at most %d characters", f.Name, f.MaxLen))
	}

	switch f.Format {
	case FormatEmail:
		if !emailPattern.MatchString(str) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid email address", f.Name))
		}
	case FormatPhone:
		if !phonePattern.MatchString(str) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid phone number", f.Name))
		}
	case FormatSlug:
		if !slugPattern.MatchString(str) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must contain only lowercase letters, numbers and hyphens", f.Name))
		}
	}

	if len(f.Enum) > 0 {
		found := false
		for _, allowed := range f.Enum {
			if str == allowed {
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("%s must be one of: %s", f.Name, strings.Join(f.Enum, ", ")))
		}
	}
	return str, nil
}

func (f Field) checkBounds(num float64) error {
	if f.Min != nil && num < *f.Min {
		if f.Max != nil {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s must be between %s and %s", f.Name, formatNumber(*f.Min), formatNumber(*f.Max)))
		}
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at least %s", f.Name, formatNumber(*f.Min)))
	}
	if f.Max != nil && num > *f.Max {
		if f.Min != nil {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s must be between %s and %s", f.Name, formatNumber(*f.Min), formatNumber(*f.Max)))
		}
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at most %s", f.Name, formatNumber(*f.Max)))
	}
	return nil
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

// Bound is a convenience for inclusive numeric limits.
func Bound(n float64) *float64 {
	return &n
}
