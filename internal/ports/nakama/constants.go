package nakama

// RPC ids clients call to play at the table.
const (
	RpcPlay   = "blackjack_play"
	RpcHit    = "blackjack_hit"
	RpcStand  = "blackjack_stand"
	RpcStatus = "blackjack_status"
)

// gRPC-style status codes carried by runtime errors.
const (
	codeFailedPrecondition = 9
	codeInternal           = 13
	codeUnavailable        = 14
	codeUnauthenticated    = 16
)

// Runtime env keys read at module load.
const (
	envConfigPath = "blackjack_config_path"
)
