package monkey

import "testing"

func TestValueDisplayForms(t *testing.T) {
	tests := []struct {
		value   Value
		display string
		inspect string
	}{
		{NewNull(), "null", "null"},
		{Value{}, "null", "null"},
		{NewInt(-3), "-3", "-3"},
		{NewBool(true), "true", "true"},
		{NewString("hi"), "hi", `"hi"`},
		{NewArray([]Value{NewInt(1), NewString("a")}), "[1, a]", `[1, "a"]`},
		{NewArray(nil), "[]", "[]"},
		{NewError("boom"), "ERROR: boom", "ERROR: boom"},
		{NewReturn(NewInt(5)), "5", "5"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.display {
			t.Fatalf("%s String: got %q, want %q", tt.value.Kind(), got, tt.display)
		}
		if got := tt.value.Inspect(); got != tt.inspect {
			t.Fatalf("%s Inspect: got %q, want %q", tt.value.Kind(), got, tt.inspect)
		}
	}

	builtin, _ := NewRegistry().Lookup("len")
	if got := builtin.String(); got != "builtin function" {
		t.Fatalf("unexpected builtin display: %q", got)
	}
}

func TestValueTruthy(t *testing.T) {
	falsy := []Value{NewNull(), NewBool(false)}
	truthy := []Value{NewBool(true), NewInt(0), NewString(""), NewArray(nil)}
	for _, v := range falsy {
		if v.Truthy() {
			t.Fatalf("%s should be falsy", v.Inspect())
		}
	}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Fatalf("%s should be truthy", v.Inspect())
		}
	}
}

func TestValueKindNames(t *testing.T) {
	tests := map[ValueKind]string{
		KindNull:     "NULL",
		KindInteger:  "INTEGER",
		KindBoolean:  "BOOLEAN",
		KindString:   "STRING",
		KindArray:    "ARRAY",
		KindFunction: "FUNCTION",
		KindBuiltin:  "BUILTIN",
		KindError:    "ERROR",
		KindReturn:   "RETURN_VALUE",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestValueAccessorsOnOtherKinds(t *testing.T) {
	v := NewString("x")
	if v.Int() != 0 || v.Bool() || v.Array() != nil || v.Function() != nil || v.Builtin() != nil || v.ErrorMessage() != "" {
		t.Fatalf("accessors should return zero values for other kinds")
	}
	if got := NewInt(1).Unwrap(); got.Int() != 1 {
		t.Fatalf("Unwrap should return non-return values unchanged")
	}
}
