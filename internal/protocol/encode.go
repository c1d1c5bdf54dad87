package protocol

import (
	"errors"
	"fmt"
)

var ErrUnencodable = errors.New("protocol: unencodable field value")

// Fields is a nested field sequence built by a message encoder. Elements
// are Token values, Go scalars, or nested Fields. An empty nested Fields
// contributes no tokens at all.
type Fields []any

// Flatten linearizes fields depth-first, left-to-right, converting each
// scalar to its Token form. A nil element is a programming error: callers
// must mark intentional absence with the unset sentinel.
func Flatten(fields Fields) ([]Token, error) {
	out := make([]Token, 0, len(fields))
	return appendFlat(out, fields)
}

func appendFlat(out []Token, fields Fields) ([]Token, error) {
	var err error
	for _, field := range fields {
		switch v := field.(type) {
		case Token:
			out = append(out, v)
		case Fields:
			out, err = appendFlat(out, v)
			if err != nil {
				return nil, err
			}
		case int:
			out = append(out, Int(int64(v)))
		case int64:
			out = append(out, Int(v))
		case float64:
			out = append(out, Float(v))
		case string:
			out = append(out, Str(v))
		case bool:
			out = append(out, Bool(v))
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnencodable, field)
		}
	}
	return out, nil
}

// EncodeTokens serializes tokens to wire bytes, one NUL after every token.
func EncodeTokens(tokens []Token) []byte {
	size := len(tokens)
	for _, t := range tokens {
		size += len(t.Wire())
	}
	buf := make([]byte, 0, size)
	for _, t := range tokens {
		buf = t.appendWire(buf)
	}
	return buf
}

// EncodeFields flattens fields and serializes the result in one step.
func EncodeFields(fields Fields) ([]byte, error) {
	tokens, err := Flatten(fields)
	if err != nil {
		return nil, err
	}
	return EncodeTokens(tokens), nil
}
