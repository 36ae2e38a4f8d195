package interp

// clockBuiltin is the `clock` native function: zero arguments, returns
// seconds since an arbitrary epoch as a Number (spec.md §9: "referenced
// as a TODO and not implemented in the source; this spec treats it as
// optional" — wired here since nothing in the grammar or resolver
// excludes it).
type clockBuiltin struct {
	now func() float64
}

func newClockBuiltin(now func() float64) *clockBuiltin {
	return &clockBuiltin{now: now}
}

func (c *clockBuiltin) Type() string   { return "function" }
func (c *clockBuiltin) String() string { return "<native fn clock>" }
func (c *clockBuiltin) Arity() int     { return 0 }

func (c *clockBuiltin) Call(in *Interp, args []Value) (Value, *RuntimeError) {
	return Number(c.now()), nil
}
