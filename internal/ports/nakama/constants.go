package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an open table.
	RpcQuickMatch = "quick_match"

	// Convention authoring RPC ids.
	RpcConventionsGet           = "conventions_get"
	RpcConventionsChildren      = "conventions_children"
	RpcConventionsSetMeaning    = "conventions_set_meaning"
	RpcConventionsSetDefinition = "conventions_set_definition"
	RpcConventionsDelete        = "conventions_delete"
	RpcConventionsImport        = "conventions_import"

	// Table invite RPC ids.
	RpcInviteCreate = "table_invite_create"
	RpcInviteRedeem = "table_invite_redeem"

	// MatchNameBridgeTable is the authoritative match handler name registered with Nakama.
	MatchNameBridgeTable = "bridge_table"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartAuction int64 = 1
	OpSelectBid    int64 = 2
	OpPass         int64 = 3
	OpUndo         int64 = 4
	OpLegalCalls   int64 = 5
	OpNewAuction   int64 = 6

	// Server -> Client events
	OpTableState         int64 = 101
	OpAuctionStarted     int64 = 102
	OpCallMade           int64 = 103
	OpCallRetracted      int64 = 104
	OpAuctionEnded       int64 = 105
	OpLegalCallsResponse int64 = 106 // sent privately
	OpConventionNote     int64 = 107 // sent privately to the table owner
	OpTableError         int64 = 108
)
