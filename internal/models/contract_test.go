package models

import (
	"testing"

	"github.com/vjebelev/ibgo/internal/protocol"
)

func wireStrings(t *testing.T, fields protocol.Fields) []string {
	t.Helper()
	tokens, err := protocol.Flatten(fields)
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Wire()
	}
	return out
}

func TestSerializeShortVsLong(t *testing.T) {
	c := &Contract{
		Symbol:          "AAPL",
		SecType:         "STK",
		Exchange:        "SMART",
		PrimaryExchange: "NASDAQ",
		Currency:        "USD",
	}
	short := wireStrings(t, c.SerializeShort())
	long := wireStrings(t, c.SerializeLong())
	if len(long) != len(short)+1 {
		t.Fatalf("long form must add exactly the primary exchange: short=%d long=%d", len(short), len(long))
	}
	if long[7] != "NASDAQ" {
		t.Errorf("primary exchange position: got %q", long[7])
	}
	for _, got := range short {
		if got == "NASDAQ" {
			t.Errorf("short form must omit the primary exchange")
		}
	}
}

func TestSerializeComboLegsNonBag(t *testing.T) {
	c := &Contract{Symbol: "GE", SecType: "STK"}
	if got := wireStrings(t, c.SerializeComboLegs()); len(got) != 0 {
		t.Fatalf("non-combo contract must contribute zero tokens, got %v", got)
	}
}

func TestSerializeComboLegsBag(t *testing.T) {
	c := &Contract{
		Symbol:  "USO.SPD",
		SecType: SecTypeBag,
		ComboLegs: []ComboLeg{
			{ConID: 1001, Ratio: 1, Action: "BUY", Exchange: "SMART"},
			{ConID: 1002, Ratio: 2, Action: "SELL", Exchange: "SMART"},
		},
	}
	got := wireStrings(t, c.SerializeComboLegs())
	want := []string{"2", "1001", "1", "BUY", "SMART", "1002", "2", "SELL", "SMART"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSerializeUnderComp(t *testing.T) {
	c := &Contract{SecType: SecTypeBag}
	if got := wireStrings(t, c.SerializeUnderComp()); len(got) != 1 || got[0] != "0" {
		t.Fatalf("absent under component: got %v", got)
	}
	c.UnderComp = &UnderComp{ConID: 99, Delta: 0.5, Price: 12.5}
	got := wireStrings(t, c.SerializeUnderComp())
	want := []string{"1", "99", "0.5", "12.5"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSerializeAlgo(t *testing.T) {
	if got := wireStrings(t, SerializeAlgo("", nil)); len(got) != 1 || got[0] != "" {
		t.Fatalf("empty strategy: got %v", got)
	}
	got := wireStrings(t, SerializeAlgo("Vwap", []TagValue{{Tag: "maxPctVol", Value: "0.1"}}))
	want := []string{"Vwap", "1", "maxPctVol", "0.1"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestNewOrderDefaults(t *testing.T) {
	o := NewOrder()
	if !o.Transmit {
		t.Errorf("new orders transmit by default")
	}
	if o.OpenClose != "O" {
		t.Errorf("new orders open a position by default, got %q", o.OpenClose)
	}
	if o.LimitPrice != nil || o.MinQuantity != nil {
		t.Errorf("optional numerics must start unset")
	}
}
