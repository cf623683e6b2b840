package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "netfamily.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "netfamily.log"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = defaultAppDataDir()
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for netfamily.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string   `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir     string   `long:"logdir" description:"Directory to log output"`
	NoLogFile  bool     `long:"nologfile" description:"Only log to standard output"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	AddNets    []string `long:"addnet" description:"Register an additional network identifier"`
	DropNets   []string `long:"dropnet" description:"Unregister a network by identifier"`
	Clones     bool     `long:"clones" description:"Register the main networks of all Bitcoin derived chains"`
}

// defaultAppDataDir returns the directory netfamily keeps its files in.
func defaultAppDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "netfamily")
	}
	return "."
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The command line itself is parsed by the returned parser once the commands
// are registered on it, which also runs the selected command.
func loadConfig(args []string) (*config, *flags.Parser, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Commands are not registered on the pre-parser,
	// and any errors can be ignored here since they will be caught by the
	// final parse.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.IgnoreUnknown)
	preParser.ParseArgs(args)

	parser := newConfigParser(&cfg, flags.Default)
	if preCfg.ConfigFile != defaultConfigFile || fileExists(preCfg.ConfigFile) {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	return &cfg, parser, nil
}

// validate checks the parsed options and initializes logging.
func (cfg *config) validate() error {
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return fmt.Errorf("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
	}
	setLogLevels(level)

	if !cfg.NoLogFile {
		logFile := filepath.Join(cleanAndExpandPath(cfg.LogDir), defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return err
		}
	}
	return nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}
