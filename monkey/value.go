package monkey

// ValueKind is the runtime type tag of a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInteger
	KindBoolean
	KindString
	KindArray
	KindFunction
	KindBuiltin
	KindError
	KindReturn
)

// Value is a tagged union over every runtime value. The zero Value is NULL,
// the absent value.
type Value struct {
	kind ValueKind
	data any
}

// Function is a closure: a function literal paired with the environment it
// was evaluated in.
type Function struct {
	Parameters []*Identifier
	Body       *BlockStatement
	Env        *Env

	// source is the text the literal was parsed from, when known.
	source string
}

type Builtin struct {
	Name string
	// Arity is the exact argument count, or -1 for any count.
	Arity int
	Fn    BuiltinFunc
}

type BuiltinFunc func(exec *Execution, args []Value) Value

type errorObject struct {
	message string
	pos     Position
	frames  []StackFrame
	source  string
}

// StackFrame is one active function call when an ERROR value was raised.
type StackFrame struct {
	Function string
	Pos      Position
}

func NewNull() Value { return Value{kind: KindNull} }

func NewInt(i int64) Value { return Value{kind: KindInteger, data: i} }

func NewBool(b bool) Value { return Value{kind: KindBoolean, data: b} }

func NewString(s string) Value { return Value{kind: KindString, data: s} }

// NewArray takes ownership of elems.
func NewArray(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, data: elems}
}

func NewFunction(params []*Identifier, body *BlockStatement, env *Env) Value {
	return Value{kind: KindFunction, data: &Function{Parameters: params, Body: body, Env: env}}
}

func NewBuiltin(name string, arity int, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Arity: arity, Fn: fn}}
}

func NewError(message string) Value {
	return Value{kind: KindError, data: &errorObject{message: message}}
}

func newErrorAt(pos Position, message string) Value {
	return Value{kind: KindError, data: &errorObject{message: message, pos: pos}}
}

// NewReturn wraps v in the signal that unwinds blocks up to the enclosing
// function call.
func NewReturn(v Value) Value { return Value{kind: KindReturn, data: v} }
