package config

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

// Property > declared > fallback, for distinct values at every tier.
func TestProperty_ResolvePrecedence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		property := rapid.IntRange(1, 1000).Draw(t, "property")
		declared := rapid.IntRange(1001, 2000).Draw(t, "declared")
		fallback := rapid.IntRange(2001, 3000).Draw(t, "fallback")

		withProp := MapProperties{PropThreads: strconv.Itoa(property)}
		if got, _ := Resolve(withProp, PositiveInt, PropThreads, declared, fallback); got != property {
			t.Fatalf("with property: got %d, want %d", got, property)
		}
		if got, _ := Resolve(MapProperties{}, PositiveInt, PropThreads, declared, fallback); got != declared {
			t.Fatalf("without property: got %d, want %d", got, declared)
		}
		if got, _ := Resolve(MapProperties{}, PositiveInt, PropThreads, 0, fallback); got != fallback {
			t.Fatalf("without property or declared: got %d, want %d", got, fallback)
		}
	})
}

// A non-blank array property always replaces the declared array, never merges with it.
func TestProperty_ResolveStringsOverrideIsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		declared := rapid.SliceOf(rapid.StringMatching(`@[a-z]{1,6}`)).Draw(t, "declared")
		override := rapid.SliceOfN(rapid.StringMatching(`@[a-z]{1,6}`), 1, 5).Draw(t, "override")

		raw := ""
		for i, v := range override {
			if i > 0 {
				raw += ","
			}
			raw += v
		}

		got := ResolveStrings(MapProperties{PropTags: raw}, PropTags, declared)
		if len(got) != len(override) {
			t.Fatalf("got %v, want %v", got, override)
		}
		for i := range got {
			if got[i] != override[i] {
				t.Fatalf("got %v, want %v", got, override)
			}
		}
	})
}
