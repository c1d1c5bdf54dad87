package protocol

import "strconv"

// EOL terminates every wire token, including empty ones.
const EOL = "\x00"

type tokenKind uint8

const (
	kindUnset tokenKind = iota
	kindInt
	kindFloat
	kindString
	kindBool
)

// Token is one wire field value. The zero Token is the unset sentinel,
// which encodes as an empty token rather than a placeholder number.
type Token struct {
	kind tokenKind
	i    int64
	f    float64
	s    string
	b    bool
}

// Int creates an integer token.
func Int(v int64) Token {
	return Token{kind: kindInt, i: v}
}

// Float creates a floating-point token.
func Float(v float64) Token {
	return Token{kind: kindFloat, f: v}
}

// Str creates a string token.
func Str(v string) Token {
	return Token{kind: kindString, s: v}
}

// Bool creates a boolean token. It encodes as "1" or "0".
func Bool(v bool) Token {
	return Token{kind: kindBool, b: v}
}

// Unset returns the unset sentinel token.
func Unset() Token {
	return Token{}
}

// OptInt maps a nil pointer to the unset sentinel.
func OptInt(v *int64) Token {
	if v == nil {
		return Unset()
	}
	return Int(*v)
}

// OptFloat maps a nil pointer to the unset sentinel.
func OptFloat(v *float64) Token {
	if v == nil {
		return Unset()
	}
	return Float(*v)
}

// IsUnset reports whether t is the unset sentinel.
func (t Token) IsUnset() bool {
	return t.kind == kindUnset
}

// Wire returns the token's ASCII representation without the terminator.
func (t Token) Wire() string {
	switch t.kind {
	case kindInt:
		return strconv.FormatInt(t.i, 10)
	case kindFloat:
		return strconv.FormatFloat(t.f, 'f', -1, 64)
	case kindBool:
		if t.b {
			return "1"
		}
		return "0"
	case kindString:
		return t.s
	default:
		return ""
	}
}

func (t Token) appendWire(dst []byte) []byte {
	dst = append(dst, t.Wire()...)
	return append(dst, 0)
}
