package networks

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pqabelian/netfamily/chaincfg"
)

// TestClassify ensures identifiers are mapped to the expected family.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Profile
		want Family
	}{
		{"nil profile", nil, Bitcoin},
		{"typed nil profile", (*chaincfg.Params)(nil), Bitcoin},
		{"empty identifier", Identifier(""), Bitcoin},
		{"mainnet", &chaincfg.MainNetParams, Bitcoin},
		{"testnet3", &chaincfg.TestNet3Params, Bitcoin},
		{"peercoin", Identifier("peercoin.main"), Peercoin},
		{"peercoin bare", Identifier("peercoin"), Peercoin},
		{"peercoin test", Identifier("org.peercoin.test"), Peercoin},
		{"nubits", Identifier("nubits.main"), Nubits},
		{"nushares", Identifier("nushares.main"), Nubits},
		{"blackcoin", Identifier("blackcoin.main"), Blackcoin},
		{"reddcoin", Identifier("reddcoin.main"), Reddcoin},
		{"vpncoin", Identifier("vpncoin.main"), Vpncoin},
		{"clams", Identifier("clams.main"), Clams},
		{"unknown", Identifier("litecoin.main"), Bitcoin},

		// Matching is case sensitive and does not normalize.
		{"upper case", Identifier("Peercoin.main"), Bitcoin},
		{"surrounding space", Identifier(" peercoin "), Peercoin},

		// The whole identifier must match; '.' does not match newlines.
		{"newline after", Identifier("peercoin\nmain"), Bitcoin},
		{"newline before", Identifier("main\npeercoin"), Bitcoin},

		// Earlier rules win when several match.
		{"peercoin before nubits", Identifier("nubits.peercoin"), Peercoin},
		{"nubits before reddcoin", Identifier("reddcoin.nushares"), Nubits},
	}

	for _, test := range tests {
		got := Classify(test.p)
		if got != test.want {
			t.Errorf("%s: unexpected family - got %v, want %v (profile %s)",
				test.name, got, test.want, spew.Sdump(test.p))
		}
	}
}

// TestClassifyCloneNets ensures every clone network classifies as its own
// family and is never a Bitcoin network.
func TestClassifyCloneNets(t *testing.T) {
	t.Parallel()

	want := map[*chaincfg.Params]Family{
		chaincfg.PeercoinParams:  Peercoin,
		chaincfg.NubitsParams:    Nubits,
		chaincfg.NusharesParams:  Nubits,
		chaincfg.BlackcoinParams: Blackcoin,
		chaincfg.ReddcoinParams:  Reddcoin,
		chaincfg.VpncoinParams:   Vpncoin,
		chaincfg.ClamsParams:     Clams,
	}
	for _, params := range chaincfg.CloneNets() {
		require.Equal(t, want[params], Classify(params), params.Name)
		require.False(t, IsFamily(params, Bitcoin), params.Name)
	}
}

// TestClassifyCached ensures a memoized result is the same as a fresh one.
func TestClassifyCached(t *testing.T) {
	t.Parallel()

	c := mustNewClassifier(DefaultFamily, defaultRules)
	for i := 0; i < 3; i++ {
		require.Equal(t, Reddcoin, c.Classify(Identifier("reddcoin.main")))
		require.Equal(t, Bitcoin, c.Classify(Identifier("org.bitcoin.production")))
	}
	require.Equal(t, 2, c.cache.Len())
}

// TestNewClassifier ensures custom rule tables are honored and invalid ones
// are rejected.
func TestNewClassifier(t *testing.T) {
	t.Parallel()

	c, err := NewClassifier(Clams, []Rule{
		{Family: Reddcoin, Pattern: "red.*"},
		{Family: Peercoin, Pattern: ".*coin"},
		{Family: Peercoin, Pattern: "ppc|xpm"},
	})
	require.NoError(t, err)
	require.Equal(t, Clams, c.Fallback())

	require.Equal(t, Reddcoin, c.Classify(Identifier("redcoin")))
	require.Equal(t, Peercoin, c.Classify(Identifier("bluecoin")))
	require.Equal(t, Peercoin, c.Classify(Identifier("xpm")))
	require.Equal(t, Clams, c.Classify(Identifier("xppc")))
	require.Equal(t, Clams, c.Classify(Identifier("")))
	require.Equal(t, Clams, c.Classify(nil))

	tests := []struct {
		name     string
		fallback Family
		rules    []Rule
		err      error
	}{
		{
			name:     "empty pattern",
			fallback: Bitcoin,
			rules:    []Rule{{Family: Peercoin, Pattern: ".*(peercoin).*"}, {Family: Reddcoin}},
			err:      ErrEmptyPattern,
		},
		{
			name:     "unknown family",
			fallback: Bitcoin,
			rules:    []Rule{{Family: numFamilies, Pattern: ".*"}},
			err:      ErrUnknownFamily,
		},
		{
			name:     "unknown fallback",
			fallback: numFamilies + 1,
			err:      ErrUnknownFamily,
		},
	}
	for _, test := range tests {
		_, err := NewClassifier(test.fallback, test.rules)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error - got %v, want %v", test.name,
				err, test.err)
		}
	}

	_, err = NewClassifier(Bitcoin, []Rule{{Family: Peercoin, Pattern: "(peercoin"}})
	require.Error(t, err)

	// An empty identifier is the absent identifier and skips the rules.
	matchAll, err := NewClassifier(Bitcoin, []Rule{{Family: Peercoin, Pattern: ".*"}})
	require.NoError(t, err)
	require.Equal(t, Peercoin, matchAll.Classify(Identifier("x")))
	require.Equal(t, Bitcoin, matchAll.Classify(Identifier("")))
}

// TestIsFamily ensures IsFamily reports membership of the classified family
// in the candidate families.
func TestIsFamily(t *testing.T) {
	t.Parallel()

	nubits := Identifier("nubits.main")
	require.True(t, IsFamily(nubits, Nubits))
	require.True(t, IsFamily(nubits, Peercoin, Nubits))
	require.True(t, IsFamily(nubits, Peercoin, Blackcoin, Reddcoin, Vpncoin, Clams, Nubits))
	require.False(t, IsFamily(nubits, Peercoin, Blackcoin))
	require.True(t, IsFamily(nil, Bitcoin))
	require.False(t, IsFamily(nil, Peercoin, Nubits))
}

// countingProfile counts how often its identifier is read.
type countingProfile struct {
	id    string
	reads int
}

func (p *countingProfile) NetworkID() string {
	p.reads++
	return p.id
}

// TestIsFamilyClassifiesOnce ensures the identifier is read once no matter
// how many families are tested.
func TestIsFamilyClassifiesOnce(t *testing.T) {
	t.Parallel()

	p := &countingProfile{id: "clams.main"}
	require.False(t, IsFamily(p, Bitcoin, Peercoin, Nubits, Blackcoin, Reddcoin, Vpncoin))
	require.Equal(t, 1, p.reads)
}

var keywords = map[string]Family{
	"peercoin":  Peercoin,
	"nubits":    Nubits,
	"nushares":  Nubits,
	"blackcoin": Blackcoin,
	"reddcoin":  Reddcoin,
	"vpncoin":   Vpncoin,
	"clams":     Clams,
}

// lowerNoKeyword generates identifiers made of characters that can never
// spell a family keyword.
var lowerNoKeyword = rapid.StringMatching(`[fghjtwxyz0-9._-]{0,20}`)

// TestClassifyProperties checks classification against identifiers built
// around exactly one keyword, and identifiers containing none.
func TestClassifyProperties(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)

	rapid.Check(t, func(t *rapid.T) {
		keyword := rapid.SampledFrom(names).Draw(t, "keyword")
		prefix := lowerNoKeyword.Draw(t, "prefix")
		suffix := lowerNoKeyword.Draw(t, "suffix")

		id := prefix + keyword + suffix
		if got := Classify(Identifier(id)); got != keywords[keyword] {
			t.Fatalf("Classify(%q) = %v, want %v", id, got, keywords[keyword])
		}
		if got := Classify(Identifier(prefix + suffix)); got != DefaultFamily {
			t.Fatalf("Classify(%q) = %v, want %v", prefix+suffix, got,
				DefaultFamily)
		}
		upper := strings.ToUpper(id)
		if got := Classify(Identifier(upper)); got != DefaultFamily {
			t.Fatalf("Classify(%q) = %v, want %v", upper, got, DefaultFamily)
		}
	})
}

// TestIsFamilyProperties checks IsFamily(p, fs...) is exactly membership of
// Classify(p) in fs.
func TestIsFamilyProperties(t *testing.T) {
	t.Parallel()

	families := Families()
	ids := []string{"peercoin.main", "nubits.main", "nushares.main",
		"blackcoin.main", "reddcoin.main", "vpncoin.main", "clams.main",
		"org.bitcoin.production", ""}

	rapid.Check(t, func(t *rapid.T) {
		p := Identifier(rapid.SampledFrom(ids).Draw(t, "id"))
		candidates := rapid.SliceOfN(rapid.SampledFrom(families), 1, 7).
			Draw(t, "families")

		want := false
		for _, f := range candidates {
			if f == Classify(p) {
				want = true
			}
		}
		if got := IsFamily(p, candidates[0], candidates[1:]...); got != want {
			t.Fatalf("IsFamily(%q, %v) = %v, want %v", p, candidates, got, want)
		}
	})
}
