package networks

// Traits describes the transaction wire-format conventions of a family.
// Serializers branch on these; nothing in this package encodes transactions.
type Traits struct {
	// TxTimestamp is set when transactions carry a 4-byte time field
	// directly after the version.
	TxTimestamp bool

	// TxTrailingTimestamp is set when the time field follows the lock
	// time instead, for transaction versions above 1.
	TxTrailingTimestamp bool

	// TokenID is set when transactions end with a single token type
	// byte taken from the network profile.
	TokenID bool

	// TxComment is set when transactions end with a variable length
	// comment string, starting at TxCommentMinVersion.
	TxComment           bool
	TxCommentMinVersion int32
}

var familyTraits = [numFamilies]Traits{
	Bitcoin:   {},
	Peercoin:  {TxTimestamp: true},
	Nubits:    {TxTimestamp: true, TokenID: true},
	Blackcoin: {TxTimestamp: true},
	Reddcoin:  {TxTrailingTimestamp: true},
	Vpncoin:   {TxTimestamp: true, TxComment: true, TxCommentMinVersion: 1},
	Clams:     {TxTimestamp: true, TxComment: true, TxCommentMinVersion: 2},
}

// TraitsOf returns the wire-format conventions of the family.  Unknown
// families have the conventions of DefaultFamily.
func TraitsOf(f Family) Traits {
	if !f.valid() {
		return familyTraits[DefaultFamily]
	}
	return familyTraits[f]
}
