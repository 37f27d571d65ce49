// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gen5seed-server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}
	defer logRotator.Close()

	tlsCfg, err := loadOrGenerateTLSConfig(cfg)
	if err != nil {
		return fmt.Errorf("preparing TLS: %w", err)
	}

	srv := &http.Server{
		Addr:      cfg.Listen,
		Handler:   newServeMux(),
		TLSConfig: tlsCfg,
	}

	log.Infof("listening for websocket clients on %s", cfg.Listen)
	if err := srv.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
