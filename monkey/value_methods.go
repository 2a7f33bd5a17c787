package monkey

import (
	"fmt"
	"strconv"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInteger:
		return "INTEGER"
	case KindBoolean:
		return "BOOLEAN"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindFunction:
		return "FUNCTION"
	case KindBuiltin:
		return "BUILTIN"
	case KindError:
		return "ERROR"
	case KindReturn:
		return "RETURN_VALUE"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String returns the display form of v. Strings render without quotes.
func (v Value) String() string {
	return v.render(false)
}

// Inspect is like String but quotes strings, including strings nested in
// arrays.
func (v Value) Inspect() string {
	return v.render(true)
}

func (v Value) render(quote bool) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInteger:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindBoolean:
		return strconv.FormatBool(v.data.(bool))
	case KindString:
		if quote {
			return strconv.Quote(v.data.(string))
		}
		return v.data.(string)
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.render(quote)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunction:
		fn := v.data.(*Function)
		params := make([]string, len(fn.Parameters))
		for i, p := range fn.Parameters {
			params[i] = p.String()
		}
		return "fn(" + strings.Join(params, ", ") + ") {\n" + fn.Body.String() + "\n}"
	case KindBuiltin:
		return "builtin function"
	case KindError:
		return "ERROR: " + v.ErrorMessage()
	case KindReturn:
		return v.data.(Value).render(quote)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Truthy reports whether v satisfies a condition. Only false and NULL are
// falsy; 0, "" and [] are truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.data.(bool)
	default:
		return true
	}
}

// Equal compares values of the same kind. Arrays compare element-wise,
// functions and builtins by identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.data.(int64) == other.data.(int64)
	case KindBoolean:
		return v.data.(bool) == other.data.(bool)
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindArray:
		left, right := v.data.([]Value), other.data.([]Value)
		if len(left) != len(right) {
			return false
		}
		for i := range left {
			if !left[i].Equal(right[i]) {
				return false
			}
		}
		return true
	case KindFunction:
		return v.data.(*Function) == other.data.(*Function)
	case KindBuiltin:
		return v.data.(*Builtin) == other.data.(*Builtin)
	case KindError:
		return v.ErrorMessage() == other.ErrorMessage()
	case KindReturn:
		return v.data.(Value).Equal(other.data.(Value))
	default:
		return false
	}
}
