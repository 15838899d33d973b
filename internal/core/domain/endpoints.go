package domain

// DefaultEndpoints are public mainnet RPC endpoints, tried in order when no
// dedicated endpoint is configured. Public nodes rate-limit aggressively,
// which is why the lookup pipeline retries and fails over.
var DefaultEndpoints = []string{
	"https://api.mainnet-beta.solana.com",
	"https://solana-rpc.publicnode.com",
	"https://rpc.ankr.com/solana",
	"https://solana.drpc.org",
}
