package monkey

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) IsError() bool { return v.kind == KindError }

func (v Value) Int() int64 {
	if v.kind == KindInteger {
		return v.data.(int64)
	}
	return 0
}

func (v Value) Bool() bool {
	if v.kind == KindBoolean {
		return v.data.(bool)
	}
	return false
}

// Str returns the contents of a STRING value and "" for any other kind.
func (v Value) Str() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

// Array returns the elements of an ARRAY value. Callers must not modify the
// returned slice.
func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.data.([]Value)
}

func (v Value) Function() *Function {
	if v.kind != KindFunction {
		return nil
	}
	return v.data.(*Function)
}

func (v Value) Builtin() *Builtin {
	if v.kind != KindBuiltin {
		return nil
	}
	return v.data.(*Builtin)
}

func (v Value) ErrorMessage() string {
	if v.kind != KindError {
		return ""
	}
	return v.data.(*errorObject).message
}

// ErrorPos reports where an ERROR value was raised, or the zero Position when
// it is unknown.
func (v Value) ErrorPos() Position {
	if v.kind != KindError {
		return Position{}
	}
	return v.data.(*errorObject).pos
}

// ErrorFrames returns the call stack captured with an ERROR value, innermost
// call first.
func (v Value) ErrorFrames() []StackFrame {
	if v.kind != KindError {
		return nil
	}
	return v.data.(*errorObject).frames
}

func (v Value) errorSource() string {
	if v.kind != KindError {
		return ""
	}
	return v.data.(*errorObject).source
}

// Unwrap returns the value carried by a return signal, and v itself for every
// other kind.
func (v Value) Unwrap() Value {
	if v.kind == KindReturn {
		return v.data.(Value)
	}
	return v
}
