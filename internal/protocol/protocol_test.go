package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestTokenWire(t *testing.T) {
	cases := []struct {
		name string
		tok  Token
		want string
	}{
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"float whole", Float(10), "10"},
		{"float fraction", Float(0.25), "0.25"},
		{"string", Str("GOOG"), "GOOG"},
		{"bool true", Bool(true), "1"},
		{"bool false", Bool(false), "0"},
		{"unset", Unset(), ""},
	}
	for _, tc := range cases {
		if got := tc.tok.Wire(); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestZeroTokenIsUnset(t *testing.T) {
	var tok Token
	if !tok.IsUnset() {
		t.Fatalf("zero Token must be the unset sentinel")
	}
	if Int(0).IsUnset() {
		t.Fatalf("Int(0) must not be unset")
	}
}

func TestEncodeTokensTerminatesEveryToken(t *testing.T) {
	buf := EncodeTokens([]Token{Int(8), Int(1), Unset(), Str("DU123")})
	want := []byte("8\x001\x00\x00DU123\x00")
	if !bytes.Equal(buf, want) {
		t.Fatalf("got %q want %q", buf, want)
	}
}

func TestFlattenDepthFirst(t *testing.T) {
	fields := Fields{
		Int(20),
		Fields{Str("IBM"), Fields{Int(1), Int(2)}, Bool(false)},
		Str("end"),
	}
	tokens, err := Flatten(fields)
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	want := []string{"20", "IBM", "1", "2", "0", "end"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Wire() != w {
			t.Errorf("token %d: got %q want %q", i, tokens[i].Wire(), w)
		}
	}
}

func TestFlattenEmptySequenceContributesNothing(t *testing.T) {
	tokens, err := Flatten(Fields{Int(1), Fields{}, Int(2)})
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("empty nested sequence must add zero tokens, got %d total", len(tokens))
	}
}

func TestFlattenScalarConversion(t *testing.T) {
	tokens, err := Flatten(Fields{3, int64(4), 2.5, "x", true})
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	want := []string{"3", "4", "2.5", "x", "1"}
	for i, w := range want {
		if tokens[i].Wire() != w {
			t.Errorf("token %d: got %q want %q", i, tokens[i].Wire(), w)
		}
	}
}

func TestFlattenRejectsNil(t *testing.T) {
	_, err := Flatten(Fields{Int(1), nil})
	if !errors.Is(err, ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
}

func TestEncodeFieldsIdempotent(t *testing.T) {
	fields := Fields{Int(1), Fields{Str("a"), Unset()}, Bool(true)}
	first, err := EncodeFields(fields)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := EncodeFields(fields)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("encoding is not idempotent")
	}
}
