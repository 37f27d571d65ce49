// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "gen5seed-server.conf"
	defaultLogFilename    = "gen5seed-server.log"
	defaultLogLevel       = "info"
	defaultListen         = "127.0.0.1:8822"
)

var (
	defaultHomeDir    = appDataDir("gen5seed-server", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, "logs")
	defaultRPCCert    = filepath.Join(defaultHomeDir, "rpc.cert")
	defaultRPCKey     = filepath.Join(defaultHomeDir, "rpc.key")
)

// config holds gen5seed-server's flags/config-file settings, mirroring
// the teacher's two-pass config loading.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir    string `long:"homedir" description:"Directory to store TLS certs and logs"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	Listen  string `long:"listen" description:"Address to listen for websocket clients on"`
	RPCCert string `long:"rpccert" description:"Path to self-signed TLS certificate"`
	RPCKey  string `long:"rpckey" description:"Path to self-signed TLS certificate key"`
	GenCert bool   `long:"gencert" description:"Generate the RPC TLS cert pair if it does not exist"`
}

func defaultConfig() config {
	return config{
		HomeDir:    defaultHomeDir,
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Listen:     defaultListen,
		RPCCert:    defaultRPCCert,
		RPCKey:     defaultRPCKey,
		GenCert:    true,
	}
}

func loadConfig() (*config, []string, error) {
	preCfg := defaultConfig()
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	cfg := preCfg
	if _, statErr := os.Stat(preCfg.ConfigFile); statErr == nil {
		fileParser := flags.NewParser(&cfg, flags.Default)
		if err := flags.NewIniParser(fileParser).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, nil, err
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.HomeDir, 0o700); err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.LogDir, 0o700); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

func appDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}
	appName = "." + appName

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, appName)
}
