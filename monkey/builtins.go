package monkey

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// Registry is the fixed set of native functions visible to every program.
// It is built once by NewRegistry and never modified afterwards.
type Registry struct {
	entries map[string]Value
}

// NewRegistry returns the standard builtins.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Value)}
	r.register("len", 1, builtinLen)
	r.register("first", 1, builtinFirst)
	r.register("last", 1, builtinLast)
	r.register("rest", 1, builtinRest)
	r.register("push", 2, builtinPush)
	r.register("puts", -1, builtinPuts)
	return r
}

func (r *Registry) register(name string, arity int, fn BuiltinFunc) {
	r.entries[name] = NewBuiltin(name, arity, fn)
}

// Lookup returns the BUILTIN value registered under name.
func (r *Registry) Lookup(name string) (Value, bool) {
	val, ok := r.entries[name]
	return val, ok
}

// Names returns the registered builtin names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

func wrongArgumentCount(got, want int) Value {
	return NewError(fmt.Sprintf("wrong number of arguments. got=%d, want=%d", got, want))
}

func builtinLen(exec *Execution, args []Value) Value {
	switch arg := args[0]; arg.Kind() {
	case KindString:
		return NewInt(int64(utf8.RuneCountInString(arg.Str())))
	case KindArray:
		return NewInt(int64(len(arg.Array())))
	default:
		return NewError(fmt.Sprintf("argument to 'len' not supported, got %s", arg.Kind()))
	}
}

func builtinFirst(exec *Execution, args []Value) Value {
	arr, errVal, ok := arrayArgument("first", args[0])
	if !ok {
		return errVal
	}
	if len(arr) == 0 {
		return NewNull()
	}
	return arr[0]
}

func builtinLast(exec *Execution, args []Value) Value {
	arr, errVal, ok := arrayArgument("last", args[0])
	if !ok {
		return errVal
	}
	if len(arr) == 0 {
		return NewNull()
	}
	return arr[len(arr)-1]
}

// builtinRest returns NULL rather than an empty array for arrays of length
// zero or one.
func builtinRest(exec *Execution, args []Value) Value {
	arr, errVal, ok := arrayArgument("rest", args[0])
	if !ok {
		return errVal
	}
	if len(arr) <= 1 {
		return NewNull()
	}
	return NewArray(slices.Clone(arr[1:]))
}

func builtinPush(exec *Execution, args []Value) Value {
	arr, errVal, ok := arrayArgument("push", args[0])
	if !ok {
		return errVal
	}
	out := make([]Value, len(arr), len(arr)+1)
	copy(out, arr)
	return NewArray(append(out, args[1]))
}

func builtinPuts(exec *Execution, args []Value) Value {
	for _, arg := range args {
		fmt.Fprintln(exec.Stdout(), arg.String())
	}
	return NewNull()
}

func arrayArgument(name string, arg Value) ([]Value, Value, bool) {
	if arg.Kind() != KindArray {
		return nil, NewError(fmt.Sprintf("argument to '%s' must be ARRAY, got %s", name, arg.Kind())), false
	}
	return arg.Array(), Value{}, true
}
