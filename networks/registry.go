// Package networks keeps the set of network profiles used for address auto
// discovery and classifies profiles into families by their identifier.
package networks

import (
	"sync"
	"sync/atomic"

	"github.com/pqabelian/netfamily/chaincfg"
)

// Registry holds the network profiles used for address auto discovery.
//
// Every mutation installs a complete new Set in a single atomic step, so a
// Set returned by Snapshot never changes afterwards and readers never lock.
// Writers are serialized so that concurrent registrations are not lost.
type Registry struct {
	mtx  sync.Mutex
	nets atomic.Pointer[Set]
}

// NewRegistry returns a registry holding the given profiles.
func NewRegistry(seed ...Profile) *Registry {
	r := &Registry{}
	r.nets.Store(newSet(seed...))
	return r
}

// Snapshot returns the currently registered profiles.
func (r *Registry) Snapshot() *Set {
	return r.nets.Load()
}

// Register adds the given profiles to the registry.  Profiles that are
// already registered and nil profiles are ignored.
func (r *Registry) Register(profiles ...Profile) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	old := r.nets.Load()
	nets := old.with(profiles...)
	if nets == old {
		return
	}
	r.nets.Store(nets)

	added := nets.Len() - old.Len()
	log.Debugf("Registered %d %s, %d total", added,
		pickNoun(added, "network", "networks"), nets.Len())
}

// Unregister removes the profile from the registry.  It is a no-op when the
// profile is not registered.
func (r *Registry) Unregister(p Profile) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	old := r.nets.Load()
	nets := old.without(p)
	if nets == old {
		return
	}
	r.nets.Store(nets)

	log.Debugf("Unregistered network %q, %d total", p.NetworkID(), nets.Len())
}

// defaultRegistry is the process-wide registry.  By default only the main
// and test networks are registered; the regression and simulation test
// networks share their address version bytes with the test network and must
// be registered explicitly, usually in place of it.
var defaultRegistry = NewRegistry(&chaincfg.TestNet3Params, &chaincfg.MainNetParams)

// Get returns a snapshot of the process-wide registered networks.
func Get() *Set {
	return defaultRegistry.Snapshot()
}

// Register adds the given profiles to the process-wide registry.
//
// Network profiles should be registered by a main package as early as
// possible.  Library packages may then look up networks based on inputs and
// work regardless of the network being standard or not.
func Register(profiles ...Profile) {
	defaultRegistry.Register(profiles...)
}

// Unregister removes the profile from the process-wide registry.
func Unregister(p Profile) {
	defaultRegistry.Unregister(p)
}
