// Package chaincfg defines the parameters of the Bitcoin networks and of the
// Bitcoin derived chains known to this module.
package chaincfg

import (
	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These constants are the identifiers of the default networks.
const (
	MainNetID        = "org.bitcoin.production"
	TestNet3ID       = "org.bitcoin.test"
	RegressionNetID  = "org.bitcoin.regtest"
	SimNetID         = "org.bitcoin.simnet"
	defaultTxVersion = 1
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable name for the network.
	Name string

	// ID is the identifier string of the network.  The family of a
	// network is derived from it.
	ID string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// GenesisHash is the starting block hash.  It may be nil for clone
	// networks whose genesis block is not tracked.
	GenesisHash *chainhash.Hash

	// Human-readable part for Bech32 encoded segwit addresses, as defined
	// in BIP 173.  Empty when the network has no segwit addresses.
	Bech32HRPSegwit string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	// TxVersion is the version of newly created transactions.
	TxVersion int32

	// TokenID is the token type byte appended to transactions by networks
	// that carry several tokens, zero otherwise.
	TokenID byte
}

// NetworkID returns the identifier string of the network.
func (p *Params) NetworkID() string {
	if p == nil {
		return ""
	}
	return p.ID
}

// String returns the name of the network.
func (p *Params) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}

// HasHDKeyIDs returns whether the network defines BIP32 extended key magics.
func (p *Params) HasHDKeyIDs() bool {
	return p.HDPrivateKeyID != [4]byte{} || p.HDPublicKeyID != [4]byte{}
}

// FromBtcd returns the network parameters of a btcd network under the given
// identifier.
func FromBtcd(id string, params *btcchaincfg.Params) *Params {
	p := paramsFromBtcd(id, params)
	return &p
}

func paramsFromBtcd(id string, params *btcchaincfg.Params) Params {
	seeds := make([]DNSSeed, 0, len(params.DNSSeeds))
	for _, seed := range params.DNSSeeds {
		seeds = append(seeds, DNSSeed{
			Host:         seed.Host,
			HasFiltering: seed.HasFiltering,
		})
	}

	var genesisHash *chainhash.Hash
	if params.GenesisHash != nil {
		hash := *params.GenesisHash
		genesisHash = &hash
	}

	return Params{
		Name:             params.Name,
		ID:               id,
		Net:              params.Net,
		DefaultPort:      params.DefaultPort,
		DNSSeeds:         seeds,
		GenesisHash:      genesisHash,
		Bech32HRPSegwit:  params.Bech32HRPSegwit,
		PubKeyHashAddrID: params.PubKeyHashAddrID,
		ScriptHashAddrID: params.ScriptHashAddrID,
		PrivateKeyID:     params.PrivateKeyID,
		HDPrivateKeyID:   params.HDPrivateKeyID,
		HDPublicKeyID:    params.HDPublicKeyID,
		HDCoinType:       params.HDCoinType,
		TxVersion:        defaultTxVersion,
	}
}

// MainNetParams defines the network parameters for the main Bitcoin network.
var MainNetParams = paramsFromBtcd(MainNetID, &btcchaincfg.MainNetParams)

// TestNet3Params defines the network parameters for the test Bitcoin network
// (version 3).
var TestNet3Params = paramsFromBtcd(TestNet3ID, &btcchaincfg.TestNet3Params)

// RegressionNetParams defines the network parameters for the regression test
// Bitcoin network.  Its address encoding magics are the same as the test
// network's.
var RegressionNetParams = paramsFromBtcd(RegressionNetID, &btcchaincfg.RegressionNetParams)

// SimNetParams defines the network parameters for the simulation test Bitcoin
// network.
var SimNetParams = paramsFromBtcd(SimNetID, &btcchaincfg.SimNetParams)

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
