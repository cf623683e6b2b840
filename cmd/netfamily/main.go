// netfamily lists the registered networks, classifies network identifiers
// into families and detects networks by address prefix.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/pqabelian/netfamily/chaincfg"
	"github.com/pqabelian/netfamily/networks"
)

// applyNetworks updates the process-wide registry from the configuration.
func applyNetworks(cfg *config) {
	if cfg.Clones {
		for _, params := range chaincfg.CloneNets() {
			networks.Register(params)
		}
	}
	for _, id := range cfg.AddNets {
		networks.Register(networks.Identifier(id))
	}
	for _, id := range cfg.DropNets {
		dropped := 0
		networks.Get().ForEach(func(p networks.Profile) bool {
			if p.NetworkID() == id {
				networks.Unregister(p)
				dropped++
			}
			return true
		})
		if dropped == 0 {
			cmdLog.Warnf("Network %q is not registered", id)
		}
	}
	cmdLog.Debugf("%d networks registered", networks.Get().Len())
}

// netfamilyMain parses args and runs the selected command, writing command
// output to out.
func netfamilyMain(args []string, out io.Writer) error {
	cfg, parser, err := loadConfig(args)
	if err != nil {
		return err
	}
	if err := registerCommands(parser, out); err != nil {
		return err
	}

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := cfg.validate(); err != nil {
			return err
		}
		applyNetworks(cfg)
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	_, err = parser.ParseArgs(args)
	return err
}

func main() {
	err := netfamilyMain(os.Args[1:], os.Stdout)
	if logRotator != nil {
		logRotator.Close()
	}
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
