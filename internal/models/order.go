package models

// Order carries the full order field block read by the place-order
// encoder. Pointer fields are optional: nil encodes as an empty token.
type Order struct {
	Action        string
	TotalQuantity int64
	OrderType     string
	LimitPrice    *float64
	AuxPrice      *float64

	TIF           string
	OCAGroup      string
	OCAType       int64
	OrderRef      string
	Transmit      bool
	ParentID      int64
	BlockOrder    bool
	SweepToFill   bool
	DisplaySize   int64
	TriggerMethod int64
	OutsideRTH    bool
	Hidden        bool

	Account   string
	OpenClose string
	Origin    int64

	DiscretionaryAmount float64
	GoodAfterTime       string
	GoodTillDate        string

	FAGroup      string
	FAMethod     string
	FAPercentage string
	FAProfile    string

	ShortSaleSlot      int64
	DesignatedLocation string

	Rule80A       string
	SettlingFirm  string
	AllOrNone     bool
	MinQuantity   *int64
	PercentOffset *float64
	ETradeOnly    bool
	FirmQuoteOnly bool
	NBBOPriceCap  *float64

	AuctionStrategy int64
	StartingPrice   *float64
	StockRefPrice   *float64
	Delta           *float64
	StockRangeLower *float64
	StockRangeUpper *float64

	OverridePercentageConstraints bool

	Volatility            *float64
	VolatilityType        *int64
	DeltaNeutralOrderType string
	DeltaNeutralAuxPrice  *float64
	ContinuousUpdate      int64
	ReferencePriceType    *int64

	TrailStopPrice *float64

	ScaleInitLevelSize  *int64
	ScaleSubsLevelSize  *int64
	ScalePriceIncrement *float64

	ClearingAccount string
	ClearingIntent  string

	NotHeld      bool
	AlgoStrategy string
	AlgoParams   []TagValue
	WhatIf       bool
}

// NewOrder returns an order with the gateway's expected defaults: transmit
// immediately, opening position.
func NewOrder() *Order {
	return &Order{Transmit: true, OpenClose: "O"}
}

// ExecutionFilter narrows a request for execution reports. Empty fields
// match everything.
type ExecutionFilter struct {
	ClientID    int64
	AccountCode string
	Time        string
	Symbol      string
	SecType     string
	Exchange    string
	Side        string
}

// ScannerSubscription parameterizes a market scanner subscription. Pointer
// fields are optional: nil encodes as an empty token.
type ScannerSubscription struct {
	NumberOfRows *int64
	Instrument   string
	LocationCode string
	ScanCode     string

	AbovePrice     *float64
	BelowPrice     *float64
	AboveVolume    *int64
	MarketCapAbove *float64
	MarketCapBelow *float64

	MoodyRatingAbove  string
	MoodyRatingBelow  string
	SPRatingAbove     string
	SPRatingBelow     string
	MaturityDateAbove string
	MaturityDateBelow string

	CouponRateAbove *float64
	CouponRateBelow *float64

	ExcludeConvertible       bool
	AverageOptionVolumeAbove *int64
	ScannerSettingPairs      string
	StockTypeFilter          string
}
