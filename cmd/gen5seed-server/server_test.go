// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nazotools/gen5search/searchtime"
)

func TestMarshalEntryDebugProducesValidJson(t *testing.T) {
	out, err := marshalEntryDebug(searchtime.Entry{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), "{") {
		t.Fatalf("expected a JSON object, got %q", out)
	}
}

func TestServeMuxRegistersSearchRoute(t *testing.T) {
	mux := newServeMux()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	_, pattern := mux.Handler(req)
	if pattern != "/search" {
		t.Fatalf("want /search route registered, got %q", pattern)
	}
}
