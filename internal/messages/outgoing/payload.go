package outgoing

import (
	"fmt"

	"github.com/vjebelev/ibgo/internal/models"
)

// Payload maps field names to the values a single encode-and-send call
// reads. Domain objects are embedded by reference and never mutated.
type Payload map[string]any

func (p Payload) str(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func (p Payload) integer(key string, def int64) int64 {
	switch v := p[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return def
	}
}

func (p Payload) float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

func (p Payload) boolean(key string, def bool) bool {
	v, ok := p[key].(bool)
	if !ok {
		return def
	}
	return v
}

// subjectID returns the ticker/order/request identifier when the payload
// carries one.
func (p Payload) subjectID() (int64, bool) {
	for _, key := range []string{"id", "request_id"} {
		switch v := p[key].(type) {
		case int:
			return int64(v), true
		case int64:
			return v, true
		}
	}
	return 0, false
}

func (p Payload) contract() (*models.Contract, error) {
	c, ok := p["contract"].(*models.Contract)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: missing contract", ErrBadPayload)
	}
	return c, nil
}

func (p Payload) order() (*models.Order, error) {
	o, ok := p["order"].(*models.Order)
	if !ok || o == nil {
		return nil, fmt.Errorf("%w: missing order", ErrBadPayload)
	}
	return o, nil
}

// filter returns the execution filter, or an empty match-all filter when
// the payload carries none.
func (p Payload) filter() (*models.ExecutionFilter, error) {
	v, ok := p["filter"]
	if !ok {
		return &models.ExecutionFilter{}, nil
	}
	f, ok := v.(*models.ExecutionFilter)
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: filter is not an ExecutionFilter", ErrBadPayload)
	}
	return f, nil
}

func (p Payload) subscription() (*models.ScannerSubscription, error) {
	s, ok := p["subscription"].(*models.ScannerSubscription)
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: missing scanner subscription", ErrBadPayload)
	}
	return s, nil
}
