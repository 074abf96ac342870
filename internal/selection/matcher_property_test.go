package selection

import (
	"testing"

	"pgregory.net/rapid"
)

// genFeature draws a feature whose pickles sit on strictly increasing lines and carry
// an accept flag that the generated predicate reads back.
func genFeature(t *rapid.T) (fakeFeature, []bool) {
	n := rapid.IntRange(0, 30).Draw(t, "pickles")
	pickles := make([]Pickle, 0, n)
	accepted := make([]bool, 0, n)
	line := 1
	for i := 0; i < n; i++ {
		line += rapid.IntRange(1, 5).Draw(t, "gap")
		ok := rapid.Bool().Draw(t, "accepted")
		var tags []string
		if ok {
			tags = []string{"@run"}
		}
		pickles = append(pickles, fakePickle{loc: Location{Line: line, Column: 3}, tags: tags})
		accepted = append(accepted, ok)
	}
	return fakeFeature{uri: "generated.feature", pickles: pickles}, accepted
}

// Match agrees with the exhaustive "any pickle accepted" definition.
func TestProperty_MatchEqualsExhaustiveScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		feature, accepted := genFeature(t)

		want := false
		for _, ok := range accepted {
			want = want || ok
		}

		if got := Match(feature, hasTag("@run")); got != want {
			t.Fatalf("Match() = %v, want %v", got, want)
		}
	})
}

// MatchLocation returns the pickle at the line only when it exists and is accepted.
func TestProperty_MatchLocation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		feature, accepted := genFeature(t)
		line := rapid.IntRange(0, 200).Draw(t, "line")

		wantFound := false
		for i, p := range feature.pickles {
			if p.Location().Line == line {
				wantFound = accepted[i]
			}
		}

		loc, found := MatchLocation(feature, hasTag("@run"), line)
		if found != wantFound {
			t.Fatalf("MatchLocation(%d) found = %v, want %v", line, found, wantFound)
		}
		if found && loc.Line != line {
			t.Fatalf("MatchLocation(%d) = %v", line, loc)
		}
	})
}
