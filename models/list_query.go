package models

// ListQuery holds the optional listing criteria. A nil pointer or empty
// string means the criterion imposes no constraint. The age range is
// all-or-nothing: it only applies when both bounds are present.
type ListQuery struct {
	MinAge   *int
	MaxAge   *int
	Gender   string
	Division string
	Page     int
}

// AgeRangeApplies reports whether both age bounds were supplied.
func (q ListQuery) AgeRangeApplies() bool {
	return q.MinAge != nil && q.MaxAge != nil
}

// Matches evaluates the conjunction of the supplied criteria against a
// profile. Omitted criteria always match.
func (q ListQuery) Matches(b Biodata) bool {
	if q.AgeRangeApplies() && (b.Age < *q.MinAge || b.Age > *q.MaxAge) {
		return false
	}
	if q.Gender != "" && b.Gender != q.Gender {
		return false
	}
	if q.Division != "" && b.PermanentDivision != q.Division {
		return false
	}
	return true
}
