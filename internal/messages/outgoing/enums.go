package outgoing

import (
	"strconv"
	"strings"
)

// BarSizes lists the historical-bar granularities the gateway accepts.
// The wire form is the one-based index into this table; position 0 is an
// invalid placeholder and never sent.
var BarSizes = []string{
	"invalid",
	"one_second",
	"five_seconds",
	"fifteen_seconds",
	"thirty_seconds",
	"one_minute",
	"two_minutes",
	"five_minutes",
	"fifteen_minutes",
	"thirty_minutes",
	"one_hour",
	"one_day",
}

// WhatToShow lists the legal quote types for historical and real-time bar
// requests. The wire form is the uppercase name.
var WhatToShow = []string{"trades", "midpoint", "bid", "ask"}

// Advisor data type names, in wire-code order starting at 1.
var faDataTypes = []string{"invalid", "groups", "profiles", "aliases"}

// normalizeEnum folds a display-case value ("One Day", "Trades") to the
// canonical symbolic form.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// BarSizeIndex validates a bar size and returns its one-based wire index.
func BarSizeIndex(s string) (int64, error) {
	name := normalizeEnum(s)
	for i := 1; i < len(BarSizes); i++ {
		if BarSizes[i] == name {
			return int64(i), nil
		}
	}
	return 0, InvalidEnumerationError{Field: "bar_size", Value: s, Legal: BarSizes[1:]}
}

// WhatToShowWire validates a quote type and returns its uppercase wire
// token.
func WhatToShowWire(s string) (string, error) {
	name := normalizeEnum(s)
	for _, legal := range WhatToShow {
		if legal == name {
			return strings.ToUpper(name), nil
		}
	}
	return "", InvalidEnumerationError{Field: "what_to_show", Value: s, Legal: WhatToShow}
}

// FaDataTypeCode translates an advisor data type, given as a name or an
// already-numeric code, to its wire code.
func FaDataTypeCode(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return faCodeInRange(int64(t))
	case int64:
		return faCodeInRange(t)
	case string:
		name := normalizeEnum(t)
		for i := 1; i < len(faDataTypes); i++ {
			if faDataTypes[i] == name {
				return int64(i), nil
			}
		}
		return 0, InvalidEnumerationError{Field: "fa_data_type", Value: t, Legal: faDataTypes[1:]}
	default:
		return 0, InvalidEnumerationError{Field: "fa_data_type", Value: "", Legal: faDataTypes[1:]}
	}
}

func faCodeInRange(code int64) (int64, error) {
	if code >= 1 && code < int64(len(faDataTypes)) {
		return code, nil
	}
	return 0, InvalidEnumerationError{
		Field: "fa_data_type",
		Value: strconv.FormatInt(code, 10),
		Legal: faDataTypes[1:],
	}
}
