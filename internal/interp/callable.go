package interp

import (
	"fmt"
	"sort"

	"github.com/loxi-lang/loxi/internal/ast"
)

// Callable is anything the evaluator can invoke with the `(...)` syntax:
// a Function, a Class (acting as its own constructor), or a builtin
// (spec.md §4.4).
type Callable interface {
	Value
	// Arity is the number of arguments Call expects.
	Arity() int
	// Call invokes the callable. args has already been evaluated left to
	// right (spec.md §5 ordering).
	Call(in *Interp, args []Value) (Value, *RuntimeError)
}

// Function is a user-defined function or method: a declaration closed
// over the environment chain live at the point it was declared
// (spec.md §4.4 "Closure").
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a parsed function declaration with the environment it
// closes over.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }
func (f *Function) Arity() int     { return len(f.declaration.Params) }

// Name returns the function's declared identifier, used for stack frames
// and trace lines.
func (f *Function) Name() string { return f.declaration.Name.Lexeme }

// Bind produces a new Function whose closure extends f's with "this"
// bound to instance. Binding happens at Get time, so the bound method
// captures whichever instance it was read off of (spec.md §5).
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

// Call runs the function body in a fresh environment enclosed by its
// closure, with parameters bound to args. A ReturnSignal raised inside
// the body is caught here and converted into the call's result; an
// initializer always yields `this` regardless of what it returns
// (spec.md §4.3, §4.4, §7).
func (f *Function) Call(in *Interp, args []Value) (Value, *RuntimeError) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, signal, rerr := in.executeBlock(f.declaration.Body, env)
	if rerr != nil {
		return nil, rerr
	}

	if f.isInitializer {
		this, _ := f.closure.GetAt(0, "this")
		return this, nil
	}

	if signal == controlReturn {
		return result, nil
	}
	return NilValue, nil
}

// Class is a runtime class value: a name, an optional superclass, and a
// method table. Calling a Class instantiates it (spec.md §4.4).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a Class value from its resolved methods.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// FindMethod looks up name on this class, then walks the superclass
// chain (spec.md §4.4 "find_method").
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the initializer's arity, or 0 if the class declares none
// (spec.md §4.4).
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: a fresh Instance, with `init` invoked
// against it if one is declared. The instance is always the result,
// regardless of what `init` returns (spec.md §4.4 "Initializer").
func (c *Class) Call(in *Interp, args []Value) (Value, *RuntimeError) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, rerr := init.Bind(instance).Call(in, args); rerr != nil {
			return nil, rerr
		}
	}
	return instance, nil
}

// MethodNames returns every method name declared on this class (not its
// superclass), lexically sorted.
func (c *Class) MethodNames() []string {
	names := make([]string, 0, len(c.Methods))
	for name := range c.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instance is a live object: a reference to its class and a mutable
// field table. Instances have identity; copying the pointer, not the
// struct, is what gives `this` its shared-mutation semantics
// (spec.md §5).
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance allocates a new, fieldless instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return i.class.Name + " instance" }

// Get reads a field first, then a method (bound to this instance), per
// spec.md §4.3 "Get". Returns ok=false if neither exists.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if method := i.class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set writes a field, creating it if absent. Fields are untyped and
// always settable, unlike the statically-declared method table
// (spec.md §4.3 "Set").
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}
