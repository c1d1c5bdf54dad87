package outgoing

// Message ids from the gateway contract. Each pairs with the protocol
// version fixed in the registry below; the (id, version) pair dictates the
// exact field list the gateway parses.
const (
	MsgRequestMarketData          int64 = 1
	MsgCancelMarketData           int64 = 2
	MsgPlaceOrder                 int64 = 3
	MsgCancelOrder                int64 = 4
	MsgRequestOpenOrders          int64 = 5
	MsgRequestAccountData         int64 = 6
	MsgRequestExecutions          int64 = 7
	MsgRequestIds                 int64 = 8
	MsgRequestContractData        int64 = 9
	MsgRequestMarketDepth         int64 = 10
	MsgCancelMarketDepth          int64 = 11
	MsgRequestNewsBulletins       int64 = 12
	MsgCancelNewsBulletins        int64 = 13
	MsgSetServerLoglevel          int64 = 14
	MsgRequestAutoOpenOrders      int64 = 15
	MsgRequestAllOpenOrders       int64 = 16
	MsgRequestManagedAccounts     int64 = 17
	MsgRequestFA                  int64 = 18
	MsgReplaceFA                  int64 = 19
	MsgRequestHistoricalData      int64 = 20
	MsgExerciseOptions            int64 = 21
	MsgRequestScannerSubscription int64 = 22
	MsgCancelScannerSubscription  int64 = 23
	MsgRequestScannerParameters   int64 = 24
	MsgCancelHistoricalData       int64 = 25
	MsgRequestCurrentTime         int64 = 49
	MsgRequestRealTimeBars        int64 = 50
	MsgCancelRealTimeBars         int64 = 51
	MsgRequestFundamentalData     int64 = 52
	MsgCancelFundamentalData      int64 = 53
	MsgRequestCalcImpliedVol      int64 = 54
	MsgRequestCalcOptionPrice     int64 = 55
	MsgCancelCalcImpliedVol       int64 = 56
	MsgCancelCalcOptionPrice      int64 = 57
	MsgRequestGlobalCancel        int64 = 58
	MsgRequestMarketDataType      int64 = 59
)

// Stable kind names. Aliased names resolve to the same definition when the
// gateway treats two client-facing operations identically on the wire.
const (
	RequestMarketData          = "request market data"
	CancelMarketData           = "cancel market data"
	PlaceOrder                 = "place order"
	CancelOrder                = "cancel order"
	RequestOpenOrders          = "request open orders"
	RequestAccountData         = "request account data"
	RequestAccountUpdates      = "request account updates"
	RequestExecutions          = "request executions"
	RequestIds                 = "request ids"
	RequestContractData        = "request contract data"
	RequestMarketDepth         = "request market depth"
	CancelMarketDepth          = "cancel market depth"
	RequestNewsBulletins       = "request news bulletins"
	CancelNewsBulletins        = "cancel news bulletins"
	SetServerLoglevel          = "set server loglevel"
	RequestAutoOpenOrders      = "request auto open orders"
	RequestAllOpenOrders       = "request all open orders"
	RequestManagedAccounts     = "request managed accounts"
	RequestFA                  = "request FA"
	ReplaceFA                  = "replace FA"
	RequestHistoricalData      = "request historical data"
	ExerciseOptions            = "exercise options"
	RequestScannerSubscription = "request scanner subscription"
	CancelScannerSubscription  = "cancel scanner subscription"
	RequestScannerParameters   = "request scanner parameters"
	CancelHistoricalData       = "cancel historical data"
	RequestCurrentTime         = "request current time"
	RequestRealTimeBars        = "request real time bars"
	CancelRealTimeBars         = "cancel real time bars"
	RequestFundamentalData     = "request fundamental data"
	CancelFundamentalData      = "cancel fundamental data"
	RequestGlobalCancel        = "request global cancel"
	RequestMarketDataType      = "request market data type"

	RequestCalculateImpliedVolatility = "request calculate implied volatility"
	RequestImpliedVolatility          = "request implied volatility"
	CalculateImpliedVolatility        = "calculate implied volatility"
	RequestCalculateOptionPrice       = "request calculate option price"
	RequestOptionPrice                = "request option price"
	CalculateOptionPrice              = "calculate option price"
	CancelCalculateImpliedVolatility  = "cancel calculate implied volatility"
	CancelImpliedVolatility           = "cancel implied volatility"
	CancelCalculateOptionPrice        = "cancel calculate option price"
	CancelOptionPrice                 = "cancel option price"
)

// fieldSpec is one named field of a data-driven kind; def is the value
// sent when the caller omits the field.
type fieldSpec struct {
	key string
	def any
}

// simpleKind declares a data-driven kind: id, version, and the ordered
// field list a single generic encode routine reads from the payload.
type simpleKind struct {
	name    string
	id      int64
	version int64
	fields  []fieldSpec
	aliases []string
}

var simpleKinds = []simpleKind{
	{name: CancelMarketData, id: MsgCancelMarketData, version: 1},
	{name: CancelOrder, id: MsgCancelOrder, version: 1},
	{name: RequestOpenOrders, id: MsgRequestOpenOrders, version: 1},
	{name: RequestAccountData, id: MsgRequestAccountData, version: 2,
		fields: []fieldSpec{
			{key: "subscribe", def: true},
			{key: "account_code", def: ""},
		},
		aliases: []string{RequestAccountUpdates}},
	{name: RequestIds, id: MsgRequestIds, version: 1,
		fields: []fieldSpec{{key: "number_of_ids", def: 1}}},
	{name: CancelMarketDepth, id: MsgCancelMarketDepth, version: 1},
	{name: RequestNewsBulletins, id: MsgRequestNewsBulletins, version: 1,
		fields: []fieldSpec{{key: "all_messages", def: false}}},
	{name: CancelNewsBulletins, id: MsgCancelNewsBulletins, version: 1},
	{name: SetServerLoglevel, id: MsgSetServerLoglevel, version: 1,
		fields: []fieldSpec{{key: "log_level", def: 2}}},
	{name: RequestAutoOpenOrders, id: MsgRequestAutoOpenOrders, version: 1,
		fields: []fieldSpec{{key: "auto_bind", def: false}}},
	{name: RequestAllOpenOrders, id: MsgRequestAllOpenOrders, version: 1},
	{name: RequestManagedAccounts, id: MsgRequestManagedAccounts, version: 1},
	{name: CancelScannerSubscription, id: MsgCancelScannerSubscription, version: 1},
	{name: RequestScannerParameters, id: MsgRequestScannerParameters, version: 1},
	{name: CancelHistoricalData, id: MsgCancelHistoricalData, version: 1},
	{name: RequestCurrentTime, id: MsgRequestCurrentTime, version: 1},
	{name: CancelRealTimeBars, id: MsgCancelRealTimeBars, version: 1},
	{name: CancelFundamentalData, id: MsgCancelFundamentalData, version: 1},
	{name: CancelCalculateImpliedVolatility, id: MsgCancelCalcImpliedVol, version: 1,
		aliases: []string{CancelImpliedVolatility}},
	{name: CancelCalculateOptionPrice, id: MsgCancelCalcOptionPrice, version: 1,
		aliases: []string{CancelOptionPrice}},
	{name: RequestGlobalCancel, id: MsgRequestGlobalCancel, version: 1},
	{name: RequestMarketDataType, id: MsgRequestMarketDataType, version: 1,
		fields: []fieldSpec{{key: "market_data_type", def: 1}}},
}
