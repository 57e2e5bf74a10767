package value

// Cons is a list cell. Its head and tail are either materialized values
// (eager cons) or suspensions held in ByName or ByNeed cells (lazy cons).
type Cons struct {
	head Cell
	tail Cell
}

// NewCons builds a materialized cell. tail must already be a list.
func NewCons(head, tail Value) *Cons {
	return &Cons{head: newValueCell(Strict, head), tail: newValueCell(Strict, tail)}
}

// NewLazyCons builds a cell whose head and tail are computed on demand.
// The tail is checked to be a list when it is first forced.
func NewLazyCons(head, tail Suspension, mode Mode) *Cons {
	return &Cons{head: newSuspendedCell(mode, head), tail: newSuspendedCell(mode, tail)}
}

func (c *Cons) Class() Class    { return ConsClass }
func (c *Cons) Inspect() string { return inspectList(c) }

func (c *Cons) First() Value { return c.head.Get("first of lazy cons") }

// Rest returns the tail, which is always Empty or a *Cons.
func (c *Cons) Rest() Value { return c.tail.GetChecked("rest of lazy cons", checkList) }

func checkList(v Value) Value {
	if !IsList(v) {
		Throw(TypeError, "the second argument to lazy cons is %s, which is not a list", Brief(v))
	}
	return v
}

// List builds an eager list of vals.
func List(vals ...Value) Value {
	var list Value = Empty
	for i := len(vals) - 1; i >= 0; i-- {
		list = NewCons(vals[i], list)
	}
	return list
}
