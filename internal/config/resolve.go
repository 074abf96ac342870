package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedProperty is returned when a property override cannot be parsed into the
// type of the option it overrides.
var ErrMalformedProperty = errors.New("malformed property override")

// Kind describes how a scalar option is parsed from a property value and when its
// declared value counts as unset.
type Kind[T any] struct {
	// Name is used in error messages (e.g. "int", "enum").
	Name string
	// Parse converts a trimmed, non-empty property value.
	Parse func(raw string) (T, error)
	// Unset reports whether a declared value should fall through to the fallback.
	// A nil Unset means every declared value is set.
	Unset func(v T) bool
}

var (
	// Int accepts any integer; a declared integer is always set.
	Int = Kind[int]{Name: "int", Parse: strconv.Atoi}

	// PositiveInt treats a declared value below one as unset.
	PositiveInt = Kind[int]{
		Name:  "int",
		Parse: strconv.Atoi,
		Unset: func(v int) bool { return v <= 0 },
	}

	// Bool accepts the strconv.ParseBool spellings.
	Bool = Kind[bool]{Name: "bool", Parse: strconv.ParseBool}

	// NonEmptyString treats the empty string as unset.
	NonEmptyString = Kind[string]{
		Name:  "string",
		Parse: func(raw string) (string, error) { return raw, nil },
		Unset: func(v string) bool { return v == "" },
	}
)

// Enum builds a Kind accepting exactly the given names. Matching is case-sensitive and
// the empty declared value is unset.
func Enum[T ~string](values ...T) Kind[T] {
	return Kind[T]{
		Name: "enum",
		Parse: func(raw string) (T, error) {
			for _, v := range values {
				if string(v) == raw {
					return v, nil
				}
			}
			names := make([]string, len(values))
			for i, v := range values {
				names[i] = string(v)
			}
			var zero T
			return zero, fmt.Errorf("valid options: %s", strings.Join(names, ", "))
		},
		Unset: func(v T) bool { return v == "" },
	}
}

// Resolve applies property > declared > fallback precedence for one scalar option.
// A present, non-blank property must parse; otherwise the run cannot start.
func Resolve[T any](props PropertySource, kind Kind[T], key string, declared, fallback T) (T, error) {
	if raw, ok := lookupNonBlank(props, key); ok {
		v, err := kind.Parse(raw)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %s=%q is not a valid %s: %v", ErrMalformedProperty, key, raw, kind.Name, err)
		}
		return v, nil
	}
	if kind.Unset != nil && kind.Unset(declared) {
		return fallback, nil
	}
	return declared, nil
}

// ResolveStrings applies property > declared precedence for an array option. A present,
// non-blank property is split on commas, each element trimmed, and replaces the declared
// array entirely.
func ResolveStrings(props PropertySource, key string, declared []string) []string {
	raw, ok := lookupNonBlank(props, key)
	if !ok {
		return declared
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func lookupNonBlank(props PropertySource, key string) (string, bool) {
	if props == nil {
		return "", false
	}
	raw, ok := props.Lookup(key)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}
