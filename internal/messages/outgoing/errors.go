package outgoing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPayload = errors.New("outgoing: invalid payload")

// InvalidEnumerationError reports an enumeration value outside its fixed
// legal set, rejected before any bytes are produced.
type InvalidEnumerationError struct {
	Field string
	Value string
	Legal []string
}

func (e InvalidEnumerationError) Error() string {
	return fmt.Sprintf("outgoing: invalid %s %q (legal: %s)",
		e.Field, e.Value, strings.Join(e.Legal, ", "))
}

// UnknownKindError reports a message kind absent from the registry. The
// registry is fixed at definition time, so this is a caller usage error.
type UnknownKindError struct {
	Kind string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("outgoing: unknown message kind %q", e.Kind)
}
