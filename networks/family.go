package networks

import (
	"errors"
	"fmt"
)

// Family groups network profiles that share wire-format conventions.
type Family uint8

// These constants define the known families.  Any network that matches no
// family pattern is a Bitcoin network.
const (
	Bitcoin Family = iota
	Peercoin
	Nubits
	Blackcoin
	Reddcoin
	Vpncoin
	Clams

	// numFamilies must always come last.
	numFamilies
)

// DefaultFamily is the family of a network that matches no family pattern.
const DefaultFamily = Bitcoin

// ErrUnknownFamily describes an error where a family name or value is not one
// of the defined families.
var ErrUnknownFamily = errors.New("unknown network family")

var familyStrings = [numFamilies]string{
	Bitcoin:   "bitcoin",
	Peercoin:  "peercoin",
	Nubits:    "nubits",
	Blackcoin: "blackcoin",
	Reddcoin:  "reddcoin",
	Vpncoin:   "vpncoin",
	Clams:     "clams",
}

// String returns the Family in human-readable form.
func (f Family) String() string {
	if f.valid() {
		return familyStrings[f]
	}
	return fmt.Sprintf("Unknown Family (%d)", uint8(f))
}

func (f Family) valid() bool {
	return f < numFamilies
}

// ParseFamily returns the family with the given name as returned by String.
func ParseFamily(name string) (Family, error) {
	for f, s := range familyStrings {
		if s == name {
			return Family(f), nil
		}
	}
	return DefaultFamily, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Families returns all defined families in declaration order.
func Families() []Family {
	families := make([]Family, numFamilies)
	for i := range families {
		families[i] = Family(i)
	}
	return families
}
