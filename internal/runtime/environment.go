package runtime

// Env is a name-to-value mapping with an optional parent, giving lexical
// scoping: a chained symbol table with Get/Set/Find over an outer
// pointer. lispgo symbols are case-sensitive, so the store is a plain Go
// map rather than a case-folding lookup.
type Env struct {
	store map[string]Value
	outer *Env
}

// NewEnv creates a root-level environment with no outer scope.
func NewEnv() *Env {
	return &Env{store: make(map[string]Value)}
}

// NewEnclosedEnv creates a child scope of outer.
func NewEnclosedEnv(outer *Env) *Env {
	return &Env{store: make(map[string]Value), outer: outer}
}

// Set binds name to val in the current frame, overwriting any existing
// local binding (def!/defmacro! semantics).
func (e *Env) Set(name string, val Value) {
	e.store[name] = val
}

// Find returns the nearest frame (self or ancestor) that binds name, or
// nil if none does.
func (e *Env) Find(name string) *Env {
	for cur := e; cur != nil; cur = cur.outer {
		if _, ok := cur.store[name]; ok {
			return cur
		}
	}
	return nil
}

// Get resolves name, raising the spec's "'<name>' not found" error if no
// frame in the chain binds it.
func (e *Env) Get(name string) (Value, error) {
	if frame := e.Find(name); frame != nil {
		return frame.store[name], nil
	}
	return nil, Throwf("'%s' not found", name)
}

// NewParamEnv constructs a child of outer by binding the parameter list
// (a List or Vector of Sym, a literal '&' marking the variadic tail) to
// the supplied arguments, per the language's parameter binding rule.
func NewParamEnv(outer *Env, params Value, args []Value) (*Env, error) {
	names, err := paramNames(params)
	if err != nil {
		return nil, err
	}

	env := NewEnclosedEnv(outer)
	variadic := -1
	for i, n := range names {
		if n == "&" {
			variadic = i
			break
		}
	}

	if variadic < 0 {
		if len(args) != len(names) {
			return nil, Throwf("Function requires %d argument(s); got %d", len(names), len(args))
		}
		for i, n := range names {
			env.Set(n, args[i])
		}
		return env, nil
	}

	if variadic+1 >= len(names) {
		return nil, Throwf("'&' must be followed by a binding name")
	}
	fixed := names[:variadic]
	restName := names[variadic+1]
	if len(args) < len(fixed) {
		return nil, Throwf("Function requires %d or more argument(s); got %d", len(fixed), len(args))
	}
	for i, n := range fixed {
		env.Set(n, args[i])
	}
	env.Set(restName, NewList(args[len(fixed):]...))
	return env, nil
}

// paramNames extracts the flat list of parameter symbol names from a List
// or Vector of Sym. Parameters may be given as either shape; behavior is
// identical either way.
func paramNames(params Value) ([]string, error) {
	var items []Value
	switch p := params.(type) {
	case *ListValue:
		items = p.ToSlice()
	case *VectorValue:
		items = p.Items
	default:
		return nil, Throwf("Expected parameter list, found '%s'", params.String())
	}
	names := make([]string, len(items))
	for i, it := range items {
		sym, ok := it.(*SymValue)
		if !ok {
			return nil, Throwf("Expected symbol in parameter list, found '%s'", it.String())
		}
		names[i] = sym.Name
	}
	return names, nil
}
