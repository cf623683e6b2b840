package chaincfg

import "github.com/btcsuite/btcd/wire"

// CloneParams are the parameters needed to describe a network derived from
// Bitcoin.  Fields that are left zero are left zero in the resulting Params,
// except TxVersion which defaults to 1.
type CloneParams struct {
	Name             string
	ID               string
	Net              uint32
	DefaultPort      string
	GenesisHash      string // big-endian hex, optional
	Bech32HRPSegwit  string
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	HDPrivateKeyID   [4]byte
	HDPublicKeyID    [4]byte
	HDCoinType       uint32
	TxVersion        int32
	TokenID          byte
}

// ReadCloneParams translates a CloneParams into network Params.  It panics
// if the genesis hash is not valid hex, so it should only be called with
// hard-coded values.
func ReadCloneParams(cp *CloneParams) *Params {
	p := &Params{
		Name:             cp.Name,
		ID:               cp.ID,
		Net:              wire.BitcoinNet(cp.Net),
		DefaultPort:      cp.DefaultPort,
		Bech32HRPSegwit:  cp.Bech32HRPSegwit,
		PubKeyHashAddrID: cp.PubKeyHashAddrID,
		ScriptHashAddrID: cp.ScriptHashAddrID,
		PrivateKeyID:     cp.PrivateKeyID,
		HDPrivateKeyID:   cp.HDPrivateKeyID,
		HDPublicKeyID:    cp.HDPublicKeyID,
		HDCoinType:       cp.HDCoinType,
		TxVersion:        cp.TxVersion,
		TokenID:          cp.TokenID,
	}
	if p.TxVersion == 0 {
		p.TxVersion = defaultTxVersion
	}
	if cp.GenesisHash != "" {
		p.GenesisHash = newHashFromStr(cp.GenesisHash)
	}
	return p
}

// Main networks of the Bitcoin derived chains with their own family.
var (
	PeercoinParams = ReadCloneParams(&CloneParams{
		Name:             "peercoin",
		ID:               "peercoin.main",
		Net:              0xe5e9e8e6,
		DefaultPort:      "9901",
		GenesisHash:      "0000000032fe677166d54963b62a4677d8957e87c508eaa4fd7eb1c880cd27e3",
		PubKeyHashAddrID: 0x37,
		ScriptHashAddrID: 0x75,
		PrivateKeyID:     0xb7,
		HDCoinType:       6,
	})

	// NuBits and NuShares share a network and differ by address magics
	// and token type.
	NubitsParams = ReadCloneParams(&CloneParams{
		Name:             "nubits",
		ID:               "nubits.main",
		Net:              0xe4e8e9e5,
		DefaultPort:      "7890",
		PubKeyHashAddrID: 0x19,
		ScriptHashAddrID: 0x1a,
		PrivateKeyID:     0x96,
		HDCoinType:       12,
		TokenID:          'B',
	})
	NusharesParams = ReadCloneParams(&CloneParams{
		Name:             "nushares",
		ID:               "nushares.main",
		Net:              0xe4e8e9e5,
		DefaultPort:      "7890",
		PubKeyHashAddrID: 0x3f,
		ScriptHashAddrID: 0x40,
		PrivateKeyID:     0x95,
		HDCoinType:       11,
		TokenID:          'S',
	})

	BlackcoinParams = ReadCloneParams(&CloneParams{
		Name:             "blackcoin",
		ID:               "blackcoin.main",
		Net:              0x05223570,
		DefaultPort:      "15714",
		PubKeyHashAddrID: 0x19,
		ScriptHashAddrID: 0x55,
		PrivateKeyID:     0x99,
		HDCoinType:       10,
	})

	ReddcoinParams = ReadCloneParams(&CloneParams{
		Name:             "reddcoin",
		ID:               "reddcoin.main",
		Net:              0xdbb6c0fb,
		DefaultPort:      "45444",
		PubKeyHashAddrID: 0x3d,
		ScriptHashAddrID: 0x05,
		PrivateKeyID:     0xbd,
		HDCoinType:       4,
		TxVersion:        2,
	})

	VpncoinParams = ReadCloneParams(&CloneParams{
		Name:             "vpncoin",
		ID:               "vpncoin.main",
		Net:              0xd1c2b3a4,
		DefaultPort:      "1920",
		PubKeyHashAddrID: 0x47,
		ScriptHashAddrID: 0x05,
		PrivateKeyID:     0xc7,
		HDCoinType:       33,
	})

	ClamsParams = ReadCloneParams(&CloneParams{
		Name:             "clams",
		ID:               "clams.main",
		Net:              0x15352203,
		DefaultPort:      "31174",
		PubKeyHashAddrID: 0x89,
		ScriptHashAddrID: 0x0d,
		PrivateKeyID:     0x85,
		HDCoinType:       23,
		TxVersion:        2,
	})
)

// CloneNets returns the main network of every Bitcoin derived chain defined
// in this package.
func CloneNets() []*Params {
	return []*Params{
		PeercoinParams,
		NubitsParams,
		NusharesParams,
		BlackcoinParams,
		ReddcoinParams,
		VpncoinParams,
		ClamsParams,
	}
}
