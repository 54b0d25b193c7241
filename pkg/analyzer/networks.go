package analyzer

// blockchainNetworks is the fixed allow-list of network names that are
// always counted, even when shorter than the minimum keyword length.
var blockchainNetworks = map[string]bool{
	"bitcoin":   true,
	"ethereum":  true,
	"scroll":    true,
	"polkadot":  true,
	"solana":    true,
	"avalanche": true,
	"cosmos":    true,
	"algorand":  true,
	"mina":      true,
	"chainlink": true,
	"uniswap":   true,
	"aave":      true,
	"compound":  true,
	"maker":     true,
	"polygon":   true,
	"binance":   true,
	"tron":      true,
	"wormhole":  true,
	"stellar":   true,
	"filecoin":  true,
}

// IsKnownNetwork reports whether the word names a known blockchain network.
func IsKnownNetwork(word string) bool {
	return blockchainNetworks[word]
}

// Included applies the inclusion rule: a keyword is counted when it names
// a known blockchain network or is longer than 3 characters.
func Included(word string) bool {
	return IsKnownNetwork(word) || len(word) > 3
}
