// Package netdetect finds the registered networks an encoded address or key
// may belong to.
//
// Lookups work on a snapshot of registered networks, usually networks.Get().
// Only members that are *chaincfg.Params carry address encoding magics;
// other profiles are skipped.  Several networks may share a magic, for
// example the test, regression test and simulation test networks, so every
// lookup returns all matches in registration order and it is up to the
// caller to decide whether the result is ambiguous.
package netdetect

import (
	"errors"
	"strings"

	"github.com/pqabelian/netfamily/chaincfg"
	"github.com/pqabelian/netfamily/networks"
)

// ErrUnknownHDKeyID describes an error where the provided id which
// is intended to identify the network for a hierarchical deterministic
// private extended key is not registered.
var ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

// filter returns the registered network params for which match is true.
func filter(nets *networks.Set, match func(*chaincfg.Params) bool) []*chaincfg.Params {
	var found []*chaincfg.Params
	nets.ForEach(func(p networks.Profile) bool {
		params, ok := p.(*chaincfg.Params)
		if ok && params != nil && match(params) {
			found = append(found, params)
		}
		return true
	})
	return found
}

// PubKeyHashAddrNets returns the networks whose pay-to-pubkey-hash addresses
// are prefixed by id.
func PubKeyHashAddrNets(nets *networks.Set, id byte) []*chaincfg.Params {
	return filter(nets, func(p *chaincfg.Params) bool {
		return p.PubKeyHashAddrID == id
	})
}

// ScriptHashAddrNets returns the networks whose pay-to-script-hash addresses
// are prefixed by id.
func ScriptHashAddrNets(nets *networks.Set, id byte) []*chaincfg.Params {
	return filter(nets, func(p *chaincfg.Params) bool {
		return p.ScriptHashAddrID == id
	})
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any of the networks.  It is up to the caller
// to check both this and IsScriptHashAddrID and decide whether an address is
// a pubkey hash address, script hash address, neither, or undeterminable (if
// both return true).
func IsPubKeyHashAddrID(nets *networks.Set, id byte) bool {
	return len(PubKeyHashAddrNets(nets, id)) > 0
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any of the networks.
func IsScriptHashAddrID(nets *networks.Set, id byte) bool {
	return len(ScriptHashAddrNets(nets, id)) > 0
}

// Bech32SegwitNets returns the networks for which prefix is the prefix of
// segwit addresses.  A valid Bech32 encoded segwit address always has as
// prefix the human-readable part for the given net followed by '1'.  The
// comparison is case insensitive.
func Bech32SegwitNets(nets *networks.Set, prefix string) []*chaincfg.Params {
	prefix = strings.ToLower(prefix)
	return filter(nets, func(p *chaincfg.Params) bool {
		return p.Bech32HRPSegwit != "" && p.Bech32HRPSegwit+"1" == prefix
	})
}

// IsBech32SegwitPrefix returns whether the prefix is a known prefix for segwit
// addresses on any of the networks.
func IsBech32SegwitPrefix(nets *networks.Set, prefix string) bool {
	return len(Bech32SegwitNets(nets, prefix)) > 0
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(nets *networks.Set, id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	found := filter(nets, func(p *chaincfg.Params) bool {
		return p.HasHDKeyIDs() && p.HDPrivateKeyID == key
	})
	if len(found) == 0 {
		return nil, ErrUnknownHDKeyID
	}

	pubBytes := found[0].HDPublicKeyID
	return pubBytes[:], nil
}
