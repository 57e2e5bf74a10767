package value

// Equal is Jam's structural equality. Ints and bools compare by value, lists
// element by element (forcing lazy cells), functions by identity. Values of
// different classes are simply unequal.
func Equal(aVal, bVal Value) bool {
	for {
		switch a := aVal.(type) {
		case *Int:
			if b, ok := bVal.(*Int); ok {
				return a.Value == b.Value
			}
			return false

		case *Bool:
			if b, ok := bVal.(*Bool); ok {
				return a.Value == b.Value
			}
			return false

		case *EmptyList:
			return bVal.Class() == EmptyClass

		case *Cons:
			b, ok := bVal.(*Cons)
			if !ok {
				return false
			}
			if a == b {
				return true
			}
			if !Equal(a.First(), b.First()) {
				return false
			}
			// walk the tails iteratively so long lists don't deepen the stack
			aVal, bVal = a.Rest(), b.Rest()

		default:
			return aVal == bVal
		}
	}
}
