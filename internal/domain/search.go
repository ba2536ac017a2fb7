package domain

// SearchMethodNone is reported when every fallback strategy came back empty
const SearchMethodNone = "none"

// SearchAttempt is one fallback strategy: what to query and which backend to use
type SearchAttempt struct {
	Query        string
	Location     string
	Method       string
	UseWebSearch bool
}

// SearchOutcome is the terminal state of a fallback search
type SearchOutcome struct {
	Candidates   []BusinessRecord
	SearchMethod string
}

// Found reports whether any strategy produced candidates
func (o *SearchOutcome) Found() bool {
	return len(o.Candidates) > 0
}
