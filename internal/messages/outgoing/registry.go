package outgoing

import (
	"io"
	"sort"

	"github.com/vjebelev/ibgo/internal/protocol"
)

type encodeFunc func(p Payload) (protocol.Fields, error)

// Definition is one immutable message kind: wire id, protocol version,
// and either an ordered field list (data-driven kinds) or a bespoke
// encoder.
type Definition struct {
	Name    string
	ID      int64
	Version int64

	fields []fieldSpec
	encode encodeFunc
}

// Encode builds the kind's complete field sequence from p: id, version,
// the subject identifier when the payload carries one, then the
// kind-specific fields.
func (d *Definition) Encode(p Payload) (protocol.Fields, error) {
	fields := protocol.Fields{d.ID, d.Version}
	if subject, ok := p.subjectID(); ok {
		fields = append(fields, subject)
	}
	if d.encode != nil {
		rest, err := d.encode(p)
		if err != nil {
			return nil, err
		}
		return append(fields, rest...), nil
	}
	for _, spec := range d.fields {
		if v, ok := p[spec.key]; ok {
			fields = append(fields, v)
			continue
		}
		if spec.def != nil {
			fields = append(fields, spec.def)
			continue
		}
		fields = append(fields, protocol.Unset())
	}
	return fields, nil
}

var registry = buildRegistry()

func buildRegistry() map[string]*Definition {
	reg := make(map[string]*Definition)
	add := func(def *Definition, aliases ...string) {
		reg[def.Name] = def
		for _, alias := range aliases {
			reg[alias] = def
		}
	}

	for _, k := range simpleKinds {
		add(&Definition{Name: k.name, ID: k.id, Version: k.version, fields: k.fields}, k.aliases...)
	}

	add(&Definition{Name: RequestMarketData, ID: MsgRequestMarketData, Version: 9,
		encode: encodeRequestMarketData})
	add(&Definition{Name: PlaceOrder, ID: MsgPlaceOrder, Version: 38,
		encode: encodePlaceOrder})
	add(&Definition{Name: RequestExecutions, ID: MsgRequestExecutions, Version: 3,
		encode: encodeRequestExecutions})
	add(&Definition{Name: RequestContractData, ID: MsgRequestContractData, Version: 6,
		encode: encodeRequestContractData})
	add(&Definition{Name: RequestMarketDepth, ID: MsgRequestMarketDepth, Version: 3,
		encode: encodeRequestMarketDepth})
	add(&Definition{Name: RequestHistoricalData, ID: MsgRequestHistoricalData, Version: 4,
		encode: encodeRequestHistoricalData})
	add(&Definition{Name: ExerciseOptions, ID: MsgExerciseOptions, Version: 1,
		encode: encodeExerciseOptions})
	add(&Definition{Name: RequestScannerSubscription, ID: MsgRequestScannerSubscription, Version: 3,
		encode: encodeRequestScannerSubscription})
	add(&Definition{Name: RequestRealTimeBars, ID: MsgRequestRealTimeBars, Version: 1,
		encode: encodeRequestRealTimeBars})
	add(&Definition{Name: RequestFundamentalData, ID: MsgRequestFundamentalData, Version: 1,
		encode: encodeRequestFundamentalData})
	add(&Definition{Name: RequestCalculateImpliedVolatility, ID: MsgRequestCalcImpliedVol, Version: 1,
		encode: encodeRequestCalcImpliedVol},
		RequestImpliedVolatility, CalculateImpliedVolatility)
	add(&Definition{Name: RequestCalculateOptionPrice, ID: MsgRequestCalcOptionPrice, Version: 1,
		encode: encodeRequestCalcOptionPrice},
		RequestOptionPrice, CalculateOptionPrice)
	add(&Definition{Name: RequestFA, ID: MsgRequestFA, Version: 1,
		encode: encodeRequestFA})
	add(&Definition{Name: ReplaceFA, ID: MsgReplaceFA, Version: 1,
		encode: encodeReplaceFA})

	return reg
}

// Lookup resolves a kind name, including aliases.
func Lookup(kind string) (*Definition, error) {
	def, ok := registry[kind]
	if !ok {
		return nil, UnknownKindError{Kind: kind}
	}
	return def, nil
}

// Kinds returns every registered name, aliases included, sorted.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode resolves kind and produces its complete wire byte sequence.
func Encode(kind string, p Payload) ([]byte, error) {
	def, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	fields, err := def.Encode(p)
	if err != nil {
		return nil, err
	}
	return protocol.EncodeFields(fields)
}

// Send encodes one message and hands it to w in a single write, so a
// validation or encode failure produces zero bytes on the transport and a
// write failure propagates unchanged to the caller.
func Send(kind string, p Payload, w io.Writer) error {
	buf, err := Encode(kind, p)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
