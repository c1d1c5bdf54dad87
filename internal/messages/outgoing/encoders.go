package outgoing

import (
	"github.com/vjebelev/ibgo/internal/models"
	"github.com/vjebelev/ibgo/internal/protocol"
)

// Bespoke encoders. Each returns the kind-specific field sequence; the
// registry prepends id, version, and the subject identifier.

func encodeRequestMarketData(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.SerializeLong(),
		c.SerializeComboLegs(),
		c.SerializeUnderComp(),
		p.str("generic_tick_list", ""),
		p.boolean("snapshot", false),
	}, nil
}

func encodePlaceOrder(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	o, err := p.order()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.SerializeLong(),
		o.Action,
		o.TotalQuantity,
		o.OrderType,
		protocol.OptFloat(o.LimitPrice),
		protocol.OptFloat(o.AuxPrice),
		o.TIF,
		o.OCAGroup,
		o.Account,
		o.OpenClose,
		o.Origin,
		o.OrderRef,
		o.Transmit,
		o.ParentID,
		o.BlockOrder,
		o.SweepToFill,
		o.DisplaySize,
		o.TriggerMethod,
		o.OutsideRTH,
		o.Hidden,
		c.SerializeComboLegsExtended(),
		"", // deprecated shares allocation slot
		o.DiscretionaryAmount,
		o.GoodAfterTime,
		o.GoodTillDate,
		o.FAGroup,
		o.FAMethod,
		o.FAPercentage,
		o.FAProfile,
		o.ShortSaleSlot,
		o.DesignatedLocation,
		o.OCAType,
		o.Rule80A,
		o.SettlingFirm,
		o.AllOrNone,
		protocol.OptInt(o.MinQuantity),
		protocol.OptFloat(o.PercentOffset),
		o.ETradeOnly,
		o.FirmQuoteOnly,
		protocol.OptFloat(o.NBBOPriceCap),
		o.AuctionStrategy,
		protocol.OptFloat(o.StartingPrice),
		protocol.OptFloat(o.StockRefPrice),
		protocol.OptFloat(o.Delta),
		protocol.OptFloat(o.StockRangeLower),
		protocol.OptFloat(o.StockRangeUpper),
		o.OverridePercentageConstraints,
		protocol.OptFloat(o.Volatility),
		protocol.OptInt(o.VolatilityType),
		o.DeltaNeutralOrderType,
		protocol.OptFloat(o.DeltaNeutralAuxPrice),
		o.ContinuousUpdate,
		protocol.OptInt(o.ReferencePriceType),
		protocol.OptFloat(o.TrailStopPrice),
		protocol.OptInt(o.ScaleInitLevelSize),
		protocol.OptInt(o.ScaleSubsLevelSize),
		protocol.OptFloat(o.ScalePriceIncrement),
		o.ClearingAccount,
		o.ClearingIntent,
		o.NotHeld,
		c.SerializeUnderComp(),
		models.SerializeAlgo(o.AlgoStrategy, o.AlgoParams),
		o.WhatIf,
	}, nil
}

func encodeRequestExecutions(p Payload) (protocol.Fields, error) {
	f, err := p.filter()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		f.ClientID,
		f.AccountCode,
		f.Time,
		f.Symbol,
		f.SecType,
		f.Exchange,
		f.Side,
	}, nil
}

func encodeRequestContractData(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.ConID,
		c.SerializeShort(),
		c.IncludeExpired,
		c.SecIDType,
		c.SecID,
	}, nil
}

func encodeRequestMarketDepth(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.SerializeShort(),
		p.integer("num_rows", 0),
	}, nil
}

func encodeRequestHistoricalData(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	barSize, err := BarSizeIndex(p.str("bar_size", ""))
	if err != nil {
		return nil, err
	}
	whatToShow, err := WhatToShowWire(p.str("what_to_show", "trades"))
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.SerializeLong(),
		c.IncludeExpired,
		p.str("end_date_time", ""),
		barSize,
		p.str("duration", ""),
		p.boolean("use_rth", false),
		whatToShow,
		p.integer("format_date", 1),
		c.SerializeComboLegs(),
	}, nil
}

func encodeExerciseOptions(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.SerializeShort(),
		p.integer("exercise_action", 1),
		p.integer("exercise_quantity", 0),
		p.str("account", ""),
		p.boolean("override", false),
	}, nil
}

func encodeRequestScannerSubscription(p Payload) (protocol.Fields, error) {
	s, err := p.subscription()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		protocol.OptInt(s.NumberOfRows),
		s.Instrument,
		s.LocationCode,
		s.ScanCode,
		protocol.OptFloat(s.AbovePrice),
		protocol.OptFloat(s.BelowPrice),
		protocol.OptInt(s.AboveVolume),
		protocol.OptFloat(s.MarketCapAbove),
		protocol.OptFloat(s.MarketCapBelow),
		s.MoodyRatingAbove,
		s.MoodyRatingBelow,
		s.SPRatingAbove,
		s.SPRatingBelow,
		s.MaturityDateAbove,
		s.MaturityDateBelow,
		protocol.OptFloat(s.CouponRateAbove),
		protocol.OptFloat(s.CouponRateBelow),
		s.ExcludeConvertible,
		protocol.OptInt(s.AverageOptionVolumeAbove),
		s.ScannerSettingPairs,
		s.StockTypeFilter,
	}, nil
}

func encodeRequestRealTimeBars(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	barSize, err := BarSizeIndex(p.str("bar_size", "five_seconds"))
	if err != nil {
		return nil, err
	}
	whatToShow, err := WhatToShowWire(p.str("what_to_show", "trades"))
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.SerializeLong(),
		barSize,
		whatToShow,
		p.boolean("use_rth", false),
	}, nil
}

func encodeRequestFundamentalData(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.Symbol,
		c.SecType,
		c.Exchange,
		c.PrimaryExchange,
		c.Currency,
		c.LocalSymbol,
		p.str("report_type", ""),
	}, nil
}

func encodeRequestCalcImpliedVol(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.ConID,
		c.SerializeLong(),
		p.float("option_price", 0),
		p.float("under_price", 0),
	}, nil
}

func encodeRequestCalcOptionPrice(p Payload) (protocol.Fields, error) {
	c, err := p.contract()
	if err != nil {
		return nil, err
	}
	return protocol.Fields{
		c.ConID,
		c.SerializeLong(),
		p.float("volatility", 0),
		p.float("under_price", 0),
	}, nil
}

func encodeRequestFA(p Payload) (protocol.Fields, error) {
	code, err := FaDataTypeCode(p["fa_data_type"])
	if err != nil {
		return nil, err
	}
	return protocol.Fields{code}, nil
}

func encodeReplaceFA(p Payload) (protocol.Fields, error) {
	code, err := FaDataTypeCode(p["fa_data_type"])
	if err != nil {
		return nil, err
	}
	return protocol.Fields{code, p.str("xml", "")}, nil
}
