// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename    = "gen5seed.conf"
	defaultLogFilename       = "gen5seed.log"
	defaultLogLevel          = "info"
	defaultCheckpointDirname = "checkpoints"
	defaultWorkers           = 4
)

var (
	defaultHomeDir       = appDataDir("gen5seed", false)
	defaultConfigFile    = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir        = filepath.Join(defaultHomeDir, "logs")
	defaultCheckpointDir = filepath.Join(defaultHomeDir, defaultCheckpointDirname)
)

// config holds every flag/config-file setting gen5seed accepts, following
// the teacher's two-pass defaults-then-config-file-then-flags style.
type config struct {
	ConfigFile    string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir       string `long:"homedir" description:"Directory to store checkpoints and logs"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	CheckpointDir string `long:"checkpointdir" description:"Directory for resumable job checkpoints"`
	Workers       int    `short:"w" long:"workers" description:"Number of search tasks to plan in parallel"`

	MAC        string `long:"mac" description:"Console MAC address, colon-separated hex (e.g. 00:09:BF:12:34:56)"`
	Hardware   string `long:"hardware" description:"Console hardware revision: ds, dslite, dsi, dsi3ds"`
	Version    string `long:"version" description:"Game version: black, white, black2, white2"`
	Region     string `long:"region" description:"ROM region: jpn, kor, usa, ger, fra, spa, ita"`

	DatetimeStart string `long:"start" description:"Search range start, RFC3339-like YYYY-MM-DDTHH:MM:SS"`
	DatetimeEnd   string `long:"end" description:"Search range end, inclusive"`
	Timer0Min     uint16 `long:"timer0min" description:"Timer0 range minimum"`
	Timer0Max     uint16 `long:"timer0max" description:"Timer0 range maximum"`
	VCountMin     uint8  `long:"vcountmin" description:"VCount range minimum"`
	VCountMax     uint8  `long:"vcountmax" description:"VCount range maximum"`

	IvMinHP  uint8 `long:"ivminhp" description:"Minimum HP IV"`
	IvMinAtk uint8 `long:"ivminatk" description:"Minimum Attack IV"`
	IvMinDef uint8 `long:"ivmindef" description:"Minimum Defense IV"`
	IvMinSpA uint8 `long:"ivminspa" description:"Minimum Special Attack IV"`
	IvMinSpD uint8 `long:"ivminspd" description:"Minimum Special Defense IV"`
	IvMinSpe uint8 `long:"ivminspe" description:"Minimum Speed IV"`

	IvMaxHP  uint8 `long:"ivmaxhp" description:"Maximum HP IV"`
	IvMaxAtk uint8 `long:"ivmaxatk" description:"Maximum Attack IV"`
	IvMaxDef uint8 `long:"ivmaxdef" description:"Maximum Defense IV"`
	IvMaxSpA uint8 `long:"ivmaxspa" description:"Maximum Special Attack IV"`
	IvMaxSpD uint8 `long:"ivmaxspd" description:"Maximum Special Defense IV"`
	IvMaxSpe uint8 `long:"ivmaxspe" description:"Maximum Speed IV"`
}

// ivFilterRanges returns the six configured (min,max) IV bounds in
// HP/Atk/Def/SpA/SpD/Spe order.
func (cfg *config) ivFilterRanges() [6][2]uint8 {
	return [6][2]uint8{
		{cfg.IvMinHP, cfg.IvMaxHP},
		{cfg.IvMinAtk, cfg.IvMaxAtk},
		{cfg.IvMinDef, cfg.IvMaxDef},
		{cfg.IvMinSpA, cfg.IvMaxSpA},
		{cfg.IvMinSpD, cfg.IvMaxSpD},
		{cfg.IvMinSpe, cfg.IvMaxSpe},
	}
}

// defaultConfig returns a config pre-populated with every default value,
// the first pass of the teacher's defaults → config file → flags order.
func defaultConfig() config {
	cfg := config{
		HomeDir:       defaultHomeDir,
		ConfigFile:    defaultConfigFile,
		LogDir:        defaultLogDir,
		DebugLevel:    defaultLogLevel,
		CheckpointDir: defaultCheckpointDir,
		Workers:       defaultWorkers,
		Hardware:      "dslite",
		Version:       "black",
		Region:        "jpn",
	}
	cfg.IvMaxHP, cfg.IvMaxAtk, cfg.IvMaxDef = 31, 31, 31
	cfg.IvMaxSpA, cfg.IvMaxSpD, cfg.IvMaxSpe = 31, 31, 31
	return cfg
}

// loadConfig parses command-line flags, then a config file (if present),
// then re-applies command-line flags so they take final precedence —
// the same two-pass order the teacher's own node binaries use.
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
			return nil, nil, fmt.Errorf("gen5seed: parsing config file: %w", err)
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.HomeDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("gen5seed: creating home directory: %w", err)
	}
	if err := os.MkdirAll(cfg.LogDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("gen5seed: creating log directory: %w", err)
	}
	if err := os.MkdirAll(cfg.CheckpointDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("gen5seed: creating checkpoint directory: %w", err)
	}

	return &cfg, remainingArgs, nil
}

// appDataDir returns a dot-directory named after appName under the user's
// home directory on every OS, or "." when appName is empty or "." or the
// home directory cannot be found.
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
