// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/nazotools/gen5search/checkpoint"
	"github.com/nazotools/gen5search/rawseed"
	"github.com/nazotools/gen5search/searchtime"
)

var (
	backendLog *slog.Backend
	logRotator *rotator.Rotator

	log = slog.Disabled
)

// subsystemLoggers follows the teacher's one-named-logger-per-package
// registry, wired through each package's own UseLogger setter.
var subsystemLoggers = map[string]slog.Logger{}

func initLogRotator(logFile string) {
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		os.Stderr.WriteString("gen5seed: failed to create log rotator: " + err.Error() + "\n")
		os.Exit(1)
	}
	logRotator = r
	backendLog = slog.NewBackend(logWriter{})

	log = backendLog.Logger("MAIN")
	subsystemLoggers["MAIN"] = log

	srchLog := backendLog.Logger("SRCH")
	searchtime.UseLogger(srchLog)
	subsystemLoggers["SRCH"] = srchLog

	rawsLog := backendLog.Logger("RAWS")
	rawseed.UseLogger(rawsLog)
	subsystemLoggers["RAWS"] = rawsLog

	ckptLog := backendLog.Logger("CKPT")
	checkpoint.UseLogger(ckptLog)
	subsystemLoggers["CKPT"] = ckptLog
}

// logWriter adapts the rotator to slog's io.Writer backend contract.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	return logRotator.Write(p)
}

// setLogLevels applies a single level string to every registered
// subsystem logger.
func setLogLevels(levelStr string) error {
	level, ok := slog.LevelFromString(levelStr)
	if !ok {
		return errInvalidLogLevel(levelStr)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}

type errInvalidLogLevel string

func (e errInvalidLogLevel) Error() string {
	return "invalid log level: " + string(e)
}
