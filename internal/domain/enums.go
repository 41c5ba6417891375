package domain

// Op identifies the kind of a cage constraint in puzzle definitions.
type Op string

const (
	OpAdd   Op = "+"
	OpSub   Op = "-"
	OpMul   Op = "*"
	OpDiv   Op = "/"
	OpGiven Op = "$" // single-cell cage with a fixed value
)

// Known reports whether op is one of the supported cage operators.
func (op Op) Known() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpGiven:
		return true
	}
	return false
}
