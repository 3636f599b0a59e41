package params

// Candidate is one mutually exclusive filter and whether the caller set it.
type Candidate struct {
	Name string
	Set  bool
}

// ValidateExactlyOne succeeds iff exactly one candidate is set. The error names
// the filters that were given and every valid filter.
func ValidateExactlyOne(candidates ...Candidate) error {
	var specified []string
	valid := make([]string, 0, len(candidates))
	for _, c := range candidates {
		valid = append(valid, c.Name)
		if c.Set {
			specified = append(specified, c.Name)
		}
	}
	if len(specified) != 1 {
		return &FilterCountError{Specified: specified, Valid: valid}
	}
	return nil
}
