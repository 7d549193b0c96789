// Package polynomial parses single-variable polynomial equations, reduces
// them to canonical form and solves them up to degree 2.
//
// The pipeline is pure and synchronous:
//
//	raw text -> split on '=' -> two Expressions -> Equation
//	         -> reduce (rhs negated, like terms summed by exponent)
//	         -> degree dispatch -> Solution or one of four solve errors
//
// Solve errors are the sentinels in the domain package and are classified
// with domain.FailureOf.
package polynomial
