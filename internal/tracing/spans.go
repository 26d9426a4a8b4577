package tracing

// Span attribute keys.
const (
	// HTTP attributes
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPPath       = "url.path"
	AttrHTTPStatusCode = "http.response.status_code"

	// Client operation attributes
	AttrOperation    = "spacetraders.operation"
	AttrAgentSymbol  = "spacetraders.agent"
	AttrShipSymbol   = "spacetraders.ship"
	AttrContractID   = "spacetraders.contract"
	AttrWaypoint     = "spacetraders.waypoint"
	AttrSystem       = "spacetraders.system"
	AttrShortCircuit = "spacetraders.short_circuit"

	// Error attributes
	AttrErrorType = "error.type"
	AttrAPICode   = "spacetraders.error.code"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixOperation = "client."
	SpanPrefixHTTP      = "http."
)

// Event names for span events.
const (
	EventCacheMutated = "cache.mutated"
	EventLedgerFailed = "ledger.failed"
)
