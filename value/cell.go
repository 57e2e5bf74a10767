package value

import (
	"github.com/golang/glog"
)

// Suspension is a deferred computation: an expression together with
// everything needed to evaluate it. Force runs it again on every call.
type Suspension interface {
	Force() Value
}

// Mode decides what filling and reading a Cell does.
type Mode int

const (
	// Strict cells evaluate their suspension as soon as it is installed.
	Strict Mode = iota
	// ByName cells re-force their suspension on every read.
	ByName
	// ByNeed cells force once, keep the value and drop the suspension.
	ByNeed
)

var modeNames = [...]string{
	Strict: "value",
	ByName: "name",
	ByNeed: "need",
}

func (m Mode) String() string { return modeNames[m] }

type cellState int

const (
	unfilled cellState = iota
	suspended
	forcing
	evaluated
)

// Cell is a write-once slot shared by bindings and lazy cons cells.
//
// unfilled -> suspended -> evaluated, with forcing marking a suspension that
// is running. Reading an unfilled cell, or reading a cell from inside its
// own suspension, is a forward reference.
type Cell struct {
	mode  Mode
	state cellState
	susp  Suspension
	val   Value
}

func newValueCell(mode Mode, val Value) Cell {
	return Cell{mode: mode, state: evaluated, val: val}
}

func newSuspendedCell(mode Mode, susp Suspension) Cell {
	c := Cell{mode: mode}
	c.Fill(susp)
	return c
}

// Filled reports whether a value or suspension has been installed.
func (c *Cell) Filled() bool { return c.state != unfilled }

// Fill installs susp. Strict cells evaluate it immediately; the cell stays
// unfilled while that happens so a self-reference is caught.
func (c *Cell) Fill(susp Suspension) {
	if c.state != unfilled {
		panic("value: cell filled twice")
	}

	if c.mode == Strict {
		c.val = susp.Force()
		c.state = evaluated
		return
	}

	c.susp = susp
	c.state = suspended
}

// Get returns the cell's value, forcing its suspension if needed. what names
// the slot in error messages.
func (c *Cell) Get(what string) Value {
	return c.get(what, nil)
}

// GetChecked is Get with check applied to a freshly forced value before a
// ByNeed cell caches it, so a cached value has always passed check.
func (c *Cell) GetChecked(what string, check func(Value) Value) Value {
	return c.get(what, check)
}

func (c *Cell) get(what string, check func(Value) Value) Value {
	switch c.state {
	case evaluated:
		return c.val
	case unfilled:
		Throw(ForwardReference, "attempt to evaluate %s before it is defined, indicating an illegal forward reference", what)
	case forcing:
		Throw(ForwardReference, "%s depends on its own value, indicating an illegal forward reference", what)
	}

	c.state = forcing
	defer func() {
		if c.state == forcing {
			c.state = suspended
		}
	}()

	glog.V(9).Infof("forcing %s (by %s)", what, c.mode)
	val := c.susp.Force()
	c.state = suspended
	if check != nil {
		val = check(val)
	}

	if c.mode == ByNeed {
		c.val = val
		c.susp = nil
		c.state = evaluated
	}
	return val
}
