// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/elliptic"
	"crypto/tls"
	"fmt"
	"os"
	"time"

	"github.com/decred/dcrd/certgen"
)

// generateRPCKeyPair writes a self-signed TLS cert/key pair to the
// configured paths, following the teacher's certgen bootstrap idiom used
// to secure its own RPC listener on first run.
func generateRPCKeyPair(certPath, keyPath string) error {
	log.Infof("generating TLS certificate pair at %s", certPath)

	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(elliptic.P256(), "gen5seed-server", validUntil, nil)
	if err != nil {
		return fmt.Errorf("generating TLS cert pair: %w", err)
	}

	if err := os.WriteFile(certPath, cert, 0o600); err != nil {
		return fmt.Errorf("writing cert: %w", err)
	}
	if err := os.WriteFile(keyPath, key, 0o600); err != nil {
		os.Remove(certPath)
		return fmt.Errorf("writing key: %w", err)
	}
	return nil
}

// loadOrGenerateTLSConfig loads the configured cert/key pair, generating
// one first if it is missing and the operator opted into GenCert.
func loadOrGenerateTLSConfig(cfg *config) (*tls.Config, error) {
	if _, err := os.Stat(cfg.RPCCert); os.IsNotExist(err) {
		if !cfg.GenCert {
			return nil, fmt.Errorf("TLS cert %s does not exist and -gencert is disabled", cfg.RPCCert)
		}
		if err := generateRPCKeyPair(cfg.RPCCert, cfg.RPCKey); err != nil {
			return nil, err
		}
	}

	keypair, err := tls.LoadX509KeyPair(cfg.RPCCert, cfg.RPCKey)
	if err != nil {
		return nil, fmt.Errorf("loading TLS cert pair: %w", err)
	}
	return &tls.Config{Certificates: []tls.Certificate{keypair}, MinVersion: tls.VersionTLS12}, nil
}
