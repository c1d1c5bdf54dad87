package models

import "github.com/vjebelev/ibgo/internal/protocol"

// SecTypeBag marks a combo (spread) contract; only these carry combo legs
// on the wire.
const SecTypeBag = "BAG"

// ComboLeg is one leg of a combo contract.
type ComboLeg struct {
	ConID              int64
	Ratio              int64
	Action             string
	Exchange           string
	OpenClose          int64
	ShortSaleSlot      int64
	DesignatedLocation string
}

// UnderComp describes the delta-neutral underlying component of a combo.
type UnderComp struct {
	ConID int64
	Delta float64
	Price float64
}

// TagValue is one algo strategy parameter.
type TagValue struct {
	Tag   string
	Value string
}

// Contract identifies an instrument to the gateway. String fields default
// to empty tokens; the encoders pick the serialization variant each message
// kind requires.
type Contract struct {
	ConID           int64
	Symbol          string
	SecType         string
	Expiry          string
	Strike          float64
	Right           string
	Multiplier      string
	Exchange        string
	PrimaryExchange string
	Currency        string
	LocalSymbol     string
	IncludeExpired  bool
	SecIDType       string
	SecID           string
	ComboLegs       []ComboLeg
	UnderComp       *UnderComp
}

// SerializeShort is the compact contract form: no primary exchange.
func (c *Contract) SerializeShort() protocol.Fields {
	return protocol.Fields{
		c.Symbol,
		c.SecType,
		c.Expiry,
		c.Strike,
		c.Right,
		c.Multiplier,
		c.Exchange,
		c.Currency,
		c.LocalSymbol,
	}
}

// SerializeLong is the full contract form, with the primary exchange after
// the routing exchange.
func (c *Contract) SerializeLong() protocol.Fields {
	return protocol.Fields{
		c.Symbol,
		c.SecType,
		c.Expiry,
		c.Strike,
		c.Right,
		c.Multiplier,
		c.Exchange,
		c.PrimaryExchange,
		c.Currency,
		c.LocalSymbol,
	}
}

// SerializeComboLegs emits the leg count followed by the compact per-leg
// form. Non-combo contracts contribute no tokens at all.
func (c *Contract) SerializeComboLegs() protocol.Fields {
	if c.SecType != SecTypeBag {
		return protocol.Fields{}
	}
	fields := protocol.Fields{int64(len(c.ComboLegs))}
	for _, leg := range c.ComboLegs {
		fields = append(fields, protocol.Fields{
			leg.ConID,
			leg.Ratio,
			leg.Action,
			leg.Exchange,
		})
	}
	return fields
}

// SerializeComboLegsExtended is the order-placement per-leg form, which
// adds open/close, short-sale slot, and designated location.
func (c *Contract) SerializeComboLegsExtended() protocol.Fields {
	if c.SecType != SecTypeBag {
		return protocol.Fields{}
	}
	fields := protocol.Fields{int64(len(c.ComboLegs))}
	for _, leg := range c.ComboLegs {
		fields = append(fields, protocol.Fields{
			leg.ConID,
			leg.Ratio,
			leg.Action,
			leg.Exchange,
			leg.OpenClose,
			leg.ShortSaleSlot,
			leg.DesignatedLocation,
		})
	}
	return fields
}

// SerializeUnderComp emits the delta-neutral underlying block: a presence
// flag, then the component fields when present.
func (c *Contract) SerializeUnderComp() protocol.Fields {
	if c.UnderComp == nil {
		return protocol.Fields{false}
	}
	return protocol.Fields{
		true,
		c.UnderComp.ConID,
		c.UnderComp.Delta,
		c.UnderComp.Price,
	}
}

// SerializeAlgo emits the algo strategy block for strategy and params.
// An empty strategy is a single empty token with no parameter list.
func SerializeAlgo(strategy string, params []TagValue) protocol.Fields {
	if strategy == "" {
		return protocol.Fields{""}
	}
	fields := protocol.Fields{strategy, int64(len(params))}
	for _, p := range params {
		fields = append(fields, protocol.Fields{p.Tag, p.Value})
	}
	return fields
}
