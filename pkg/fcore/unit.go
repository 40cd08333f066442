package fcore

// Unit carries no information. It is the success payload of operations that
// only report completion.
type Unit struct{}

// Done is the Unit value.
var Done = Unit{}

func (Unit) String() string {
	return "()"
}
