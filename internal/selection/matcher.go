package selection

// Matcher answers selection questions for one feature under one filter.
type Matcher struct {
	feature   Feature
	predicate Predicate
}

// NewMatcher creates a Matcher for the given feature and predicate.
func NewMatcher(feature Feature, predicate Predicate) *Matcher {
	return &Matcher{feature: feature, predicate: predicate}
}

// Matches reports whether any pickle of the feature is accepted.
func (m *Matcher) Matches() bool {
	return Match(m.feature, m.predicate)
}

// MatchLocation returns the location of the pickle at line if it exists and is accepted.
func (m *Matcher) MatchLocation(line int) (Location, bool) {
	return MatchLocation(m.feature, m.predicate, line)
}

// Match reports whether at least one pickle of feature satisfies predicate.
// An empty feature never matches.
func Match(feature Feature, predicate Predicate) bool {
	for _, p := range feature.Pickles() {
		if predicate.Test(p) {
			return true
		}
	}
	return false
}

// MatchLocation finds the pickle whose location is on line and returns its location
// when predicate accepts it. A missing line and a rejected pickle both report false.
func MatchLocation(feature Feature, predicate Predicate, line int) (Location, bool) {
	for _, p := range feature.Pickles() {
		loc := p.Location()
		if loc.Line != line {
			continue
		}
		// At most one pickle sits on a given line.
		if predicate.Test(p) {
			return loc, true
		}
		return Location{}, false
	}
	return Location{}, false
}
