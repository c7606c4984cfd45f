package truss

// CheckDeterminacy verifies m + r == 2n for n joints, m members and r reaction unknowns.
// Passing is necessary but not sufficient: an unstable truss can still balance the count.
func CheckDeterminacy(n, m, r int) error {
	if m+r != 2*n {
		return &DeterminacyError{Joints: n, Members: m, Reactions: r}
	}
	return nil
}

// CheckDeterminacy runs the count test on the truss
func (t *Truss) CheckDeterminacy() error {
	return CheckDeterminacy(len(t.Joints), len(t.Members), t.ReactionCount())
}
