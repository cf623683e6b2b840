package networks

import (
	"errors"
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru"
)

// ErrEmptyPattern describes an error where a family rule has no pattern to
// match identifiers against.
var ErrEmptyPattern = errors.New("empty family pattern")

// classifyCacheSize is the number of identifiers whose family is memoized
// by a Classifier.
const classifyCacheSize = 256

// Rule maps identifiers matching Pattern to Family.  The pattern must match
// the whole identifier; use ".*(name).*" to match a substring.  Several rules
// may map to the same family.
type Rule struct {
	Family  Family
	Pattern string
}

// defaultRules is the family pattern table in priority order.
var defaultRules = []Rule{
	{Family: Peercoin, Pattern: ".*(peercoin).*"},
	{Family: Nubits, Pattern: ".*(nubits).*"},
	{Family: Nubits, Pattern: ".*(nushares).*"},
	{Family: Blackcoin, Pattern: ".*(blackcoin).*"},
	{Family: Reddcoin, Pattern: ".*(reddcoin).*"},
	{Family: Vpncoin, Pattern: ".*(vpncoin).*"},
	{Family: Clams, Pattern: ".*(clams).*"},
}

// DefaultRules returns a copy of the family pattern table used by Classify.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

type compiledRule struct {
	family Family
	re     *regexp.Regexp
}

// Classifier derives the family of network profiles from their identifier.
// It is safe for concurrent use.
type Classifier struct {
	fallback Family
	rules    []compiledRule
	cache    *lru.Cache
}

// NewClassifier returns a classifier testing the rules in the given order.
// Identifiers matching no rule, and profiles without an identifier, belong
// to the fallback family.  Patterns are used exactly as given and matched
// case-sensitively against the entire identifier.
//
// An empty identifier means the profile has none, so it never reaches the
// rules: even a rule such as ".*" does not claim it.
func NewClassifier(fallback Family, rules []Rule) (*Classifier, error) {
	if !fallback.valid() {
		return nil, fmt.Errorf("fallback: %w: %d", ErrUnknownFamily, uint8(fallback))
	}

	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if !rule.Family.valid() {
			return nil, fmt.Errorf("rule %d: %w: %d", i, ErrUnknownFamily,
				uint8(rule.Family))
		}
		if rule.Pattern == "" {
			return nil, fmt.Errorf("rule %d (%v): %w", i, rule.Family,
				ErrEmptyPattern)
		}
		re, err := regexp.Compile(`^(?:` + rule.Pattern + `)$`)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%v): %w", i, rule.Family, err)
		}
		compiled = append(compiled, compiledRule{family: rule.Family, re: re})
	}

	cache, err := lru.New(classifyCacheSize)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		fallback: fallback,
		rules:    compiled,
		cache:    cache,
	}, nil
}

// mustNewClassifier performs the same function as NewClassifier except it
// panics if there is an error.  This should only be called with hard-coded,
// and therefore known good, rules.
func mustNewClassifier(fallback Family, rules []Rule) *Classifier {
	c, err := NewClassifier(fallback, rules)
	if err != nil {
		panic("failed to build family classifier: " + err.Error())
	}
	return c
}

// Fallback returns the family assigned when no rule matches.
func (c *Classifier) Fallback() Family {
	return c.fallback
}

// Classify returns the family of the network profile.  Nil profiles and
// profiles with an empty identifier belong to the fallback family.
func (c *Classifier) Classify(p Profile) Family {
	if isNilProfile(p) {
		return c.fallback
	}
	id := p.NetworkID()
	if id == "" {
		return c.fallback
	}

	if f, ok := c.cache.Get(id); ok {
		return f.(Family)
	}
	f := c.match(id)
	c.cache.Add(id, f)
	return f
}

// match tests id against the rules in order; the first matching rule wins.
func (c *Classifier) match(id string) Family {
	for _, rule := range c.rules {
		if rule.re.MatchString(id) {
			return rule.family
		}
	}
	return c.fallback
}

// IsFamily returns whether the network profile belongs to any of the given
// families.  The profile is classified once.
func (c *Classifier) IsFamily(p Profile, family Family, more ...Family) bool {
	f := c.Classify(p)
	if f == family {
		return true
	}
	for _, candidate := range more {
		if f == candidate {
			return true
		}
	}
	return false
}

var defaultClassifier = mustNewClassifier(DefaultFamily, defaultRules)

// Classify returns the family of the network profile using the default
// family pattern table.
func Classify(p Profile) Family {
	return defaultClassifier.Classify(p)
}

// IsFamily returns whether the network profile belongs to any of the given
// families using the default family pattern table.
func IsFamily(p Profile, family Family, more ...Family) bool {
	return defaultClassifier.IsFamily(p, family, more...)
}
