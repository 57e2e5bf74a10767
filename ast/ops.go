package ast

type UnOp int

const (
	UnPlus UnOp = iota
	UnMinus
	Not
)

var unOpNames = [...]string{
	UnPlus:  "+",
	UnMinus: "-",
	Not:     "~",
}

func (op UnOp) String() string { return unOpNames[op] }

type BinOp int

const (
	Plus BinOp = iota
	Minus
	Times
	Divide
	Equals
	NotEquals
	LessThan
	GreaterThan
	LessThanEquals
	GreaterThanEquals
	And
	Or
)

var binOpNames = [...]string{
	Plus:              "+",
	Minus:             "-",
	Times:             "*",
	Divide:            "/",
	Equals:            "=",
	NotEquals:         "!=",
	LessThan:          "<",
	GreaterThan:       ">",
	LessThanEquals:    "<=",
	GreaterThanEquals: ">=",
	And:               "&",
	Or:                "|",
}

func (op BinOp) String() string { return binOpNames[op] }

// Prim tags the nine primitive functions.
type Prim int

const (
	FunctionP Prim = iota
	NumberP
	ListP
	ConsP
	EmptyP
	Arity
	Cons
	First
	Rest

	NumPrims
)

var primNames = [...]string{
	FunctionP: "function?",
	NumberP:   "number?",
	ListP:     "list?",
	ConsP:     "cons?",
	EmptyP:    "empty?",
	Arity:     "arity",
	Cons:      "cons",
	First:     "first",
	Rest:      "rest",
}

func (p Prim) String() string { return primNames[p] }

// LookupPrim maps a primitive's surface name to its tag.
func LookupPrim(name string) (Prim, bool) {
	for i, n := range primNames {
		if n == name {
			return Prim(i), true
		}
	}
	return 0, false
}
