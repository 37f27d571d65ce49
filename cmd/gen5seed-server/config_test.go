// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import "testing"

func TestDefaultConfigEnablesCertGenByDefault(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.GenCert {
		t.Fatal("expected GenCert to default to true so a first run can bootstrap TLS")
	}
}

func TestDefaultConfigUsesNonEmptyPaths(t *testing.T) {
	cfg := defaultConfig()
	if cfg.HomeDir == "" || cfg.LogDir == "" || cfg.RPCCert == "" || cfg.RPCKey == "" {
		t.Fatalf("expected non-empty paths, got %+v", cfg)
	}
	if cfg.Listen == "" {
		t.Fatal("expected a non-empty default listen address")
	}
}

func TestAppDataDirRejectsDotAppName(t *testing.T) {
	if dir := appDataDir(".", false); dir != "." {
		t.Fatalf("want \".\", got %q", dir)
	}
}
