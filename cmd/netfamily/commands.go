package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	flags "github.com/jessevdk/go-flags"

	"github.com/pqabelian/netfamily/chaincfg"
	"github.com/pqabelian/netfamily/netdetect"
	"github.com/pqabelian/netfamily/networks"
)

// errNoQuery describes an error where the detect command was given nothing
// to look up.
var errNoQuery = errors.New("one of --pkh, --sh or --hrp is required")

// errManyQueries describes an error where the detect command was given more
// than one thing to look up.
var errManyQueries = errors.New("only one of --pkh, --sh or --hrp may be given")

// listCmd prints the registered networks and their family.
type listCmd struct {
	out io.Writer
}

// classifyCmd prints the family of each identifier given as argument.
type classifyCmd struct {
	out io.Writer
}

// detectCmd prints the registered networks an address prefix belongs to.
type detectCmd struct {
	PubKeyHash string `long:"pkh" description:"Pay-to-pubkey-hash address version byte, e.g. 0x00"`
	ScriptHash string `long:"sh" description:"Pay-to-script-hash address version byte, e.g. 0x05"`
	HRP        string `long:"hrp" description:"Bech32 segwit address prefix, e.g. bc1"`

	out io.Writer
}

// registerCommands adds the netfamily commands to the parser.  Command output
// is written to out.
func registerCommands(parser *flags.Parser, out io.Writer) error {
	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"list", "List registered networks",
			"List the registered networks with their identifier and family.",
			&listCmd{out: out}},
		{"classify", "Classify network identifiers",
			"Print the family of each network identifier given as argument.",
			&classifyCmd{out: out}},
		{"detect", "Detect networks by address prefix",
			"Print the registered networks using the given address version byte or segwit prefix.",
			&detectCmd{out: out}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the list command.
func (c *listCmd) Execute(args []string) error {
	networks.Get().ForEach(func(p networks.Profile) bool {
		name := "-"
		if params, ok := p.(*chaincfg.Params); ok {
			name = params.Name
		}
		fmt.Fprintf(c.out, "%-24s %-10s %s\n", p.NetworkID(),
			networks.Classify(p), name)
		return true
	})
	return nil
}

// Execute runs the classify command.
func (c *classifyCmd) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("no network identifier given")
	}
	for _, id := range args {
		fmt.Fprintf(c.out, "%s\t%v\n", id, networks.Classify(networks.Identifier(id)))
	}
	return nil
}

// Execute runs the detect command.
func (c *detectCmd) Execute(args []string) error {
	queries := 0
	for _, q := range []string{c.PubKeyHash, c.ScriptHash, c.HRP} {
		if q != "" {
			queries++
		}
	}
	if queries > 1 {
		return errManyQueries
	}

	nets := networks.Get()

	var found []*chaincfg.Params
	switch {
	case c.PubKeyHash != "":
		id, err := parseAddrID(c.PubKeyHash)
		if err != nil {
			return err
		}
		found = netdetect.PubKeyHashAddrNets(nets, id)

	case c.ScriptHash != "":
		id, err := parseAddrID(c.ScriptHash)
		if err != nil {
			return err
		}
		found = netdetect.ScriptHashAddrNets(nets, id)

	case c.HRP != "":
		found = netdetect.Bech32SegwitNets(nets, c.HRP)

	default:
		return errNoQuery
	}

	if len(found) == 0 {
		cmdLog.Warnf("No registered network matches")
	}
	for _, params := range found {
		fmt.Fprintf(c.out, "%-24s %-10s %s\n", params.NetworkID(),
			networks.Classify(params), params.Name)
	}
	return nil
}

// parseAddrID parses an address version byte in decimal, hex (0x) or octal
// (0) notation.
func parseAddrID(s string) (byte, error) {
	id, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid address version byte %q: %w", s, err)
	}
	return byte(id), nil
}
