package outgoing

import (
	"errors"
	"testing"
)

func TestBarSizeIndexCoversTable(t *testing.T) {
	for i := 1; i < len(BarSizes); i++ {
		got, err := BarSizeIndex(BarSizes[i])
		if err != nil {
			t.Fatalf("%s: %v", BarSizes[i], err)
		}
		if got != int64(i) {
			t.Errorf("%s: got index %d want %d", BarSizes[i], got, i)
		}
	}
}

func TestBarSizeIndexDisplayCase(t *testing.T) {
	got, err := BarSizeIndex("One Day")
	if err != nil {
		t.Fatalf("display-case input must normalize: %v", err)
	}
	if got != 11 {
		t.Errorf("got index %d want 11", got)
	}
}

func TestBarSizeIndexRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"fortnight", "two_days", "", "invalid"} {
		_, err := BarSizeIndex(bad)
		var invalid InvalidEnumerationError
		if !errors.As(err, &invalid) {
			t.Fatalf("%q: expected InvalidEnumerationError, got %v", bad, err)
		}
		if invalid.Field != "bar_size" {
			t.Errorf("%q: error names field %q", bad, invalid.Field)
		}
		if len(invalid.Legal) != len(BarSizes)-1 {
			t.Errorf("%q: legal set has %d entries", bad, len(invalid.Legal))
		}
	}
}

func TestWhatToShowWire(t *testing.T) {
	cases := map[string]string{
		"trades":   "TRADES",
		"Trades":   "TRADES",
		"MIDPOINT": "MIDPOINT",
		"bid":      "BID",
		"ask":      "ASK",
	}
	for in, want := range cases {
		got, err := WhatToShowWire(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}

func TestWhatToShowWireRejectsUnknown(t *testing.T) {
	_, err := WhatToShowWire("volume")
	var invalid InvalidEnumerationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidEnumerationError, got %v", err)
	}
	if invalid.Field != "what_to_show" || invalid.Value != "volume" {
		t.Errorf("error detail: %+v", invalid)
	}
}

func TestFaDataTypeCode(t *testing.T) {
	for in, want := range map[string]int64{"groups": 1, "Profiles": 2, "ALIASES": 3} {
		got, err := FaDataTypeCode(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %d want %d", in, got, want)
		}
	}
	if got, err := FaDataTypeCode(2); err != nil || got != 2 {
		t.Errorf("numeric code passthrough: got %d, %v", got, err)
	}
	for _, bad := range []any{"families", 0, 9, nil} {
		_, err := FaDataTypeCode(bad)
		var invalid InvalidEnumerationError
		if !errors.As(err, &invalid) {
			t.Errorf("%v: expected InvalidEnumerationError, got %v", bad, err)
		}
	}
}
