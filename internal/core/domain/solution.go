package domain

// SolutionKind tags the shape of a successful solve.
type SolutionKind string

// Available solution kinds.
const (
	// SolutionIdentity means every real number satisfies the equation.
	SolutionIdentity SolutionKind = "identity"

	// SolutionNone means no real number satisfies the equation.
	SolutionNone SolutionKind = "no_solution"

	// SolutionSingle means exactly one real root.
	SolutionSingle SolutionKind = "single_root"

	// SolutionTwo means two distinct real roots.
	SolutionTwo SolutionKind = "two_roots"
)

// IsValid returns true if the kind is recognised.
func (k SolutionKind) IsValid() bool {
	switch k {
	case SolutionIdentity, SolutionNone, SolutionSingle, SolutionTwo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SolutionKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k SolutionKind) Description() string {
	switch k {
	case SolutionIdentity:
		return "Every real number is a solution"
	case SolutionNone:
		return "There is no solution"
	case SolutionSingle:
		return "The solution is"
	case SolutionTwo:
		return "The two solutions are"
	default:
		return unknownDescription
	}
}

// Solution is the outcome of solving a reduced polynomial of degree 0, 1 or 2.
type Solution struct {
	// Kind tags which of the fields below are meaningful.
	Kind SolutionKind

	// Degree is the degree of the polynomial the solver was dispatched on.
	Degree int

	// Roots holds zero, one or two real roots in reporting order.
	Roots []float64

	// Discriminant is b² − 4ac. Only set when Degree is 2.
	Discriminant float64
}

// IsIdentity reports whether every real number satisfies the equation.
func (s Solution) IsIdentity() bool {
	return s.Kind == SolutionIdentity
}
