// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/searchtime"
	"github.com/nazotools/gen5search/seedtypes"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// searchRequest is the client's streaming search request, one JSON object
// sent as the first websocket message.
type searchRequest struct {
	Ds           seedtypes.DsConfig         `json:"ds"`
	Cond         seedtypes.StartupCondition `json:"cond"`
	WindowStart  int                        `json:"window_start_sec"`
	WindowEnd    int                        `json:"window_end_sec"`
	Start        seedtypes.Datetime         `json:"start"`
	TotalSeconds uint64                     `json:"total_seconds"`
	BatchSeconds uint64                     `json:"batch_seconds"`
}

// wsHandler upgrades an HTTP connection and streams datetime-search
// batches to the client until the search completes or the client
// disconnects (SPEC_FULL.md §2 C19: gorilla/websocket streaming of
// searchtime batches).
func wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req searchRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Warnf("reading search request: %v", err)
		return
	}
	if req.BatchSeconds == 0 {
		req.BatchSeconds = 3600
	}

	window := rngtime.TimeWindow{StartSecOfDay: req.WindowStart, EndSecOfDay: req.WindowEnd}
	searcher := searchtime.New(req.Ds, req.Cond, window, req.Start, req.TotalSeconds)

	for searcher.Status() != "Done" {
		batch := searcher.NextBatch(req.BatchSeconds)
		if err := conn.WriteJSON(batch); err != nil {
			log.Warnf("writing batch to client: %v", err)
			return
		}
	}
	log.Infof("search stream complete")
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", wsHandler)
	return mux
}

// marshalEntryDebug is used by tests/tools that want a plain-JSON view of
// a single searchtime.Entry without establishing a websocket connection.
func marshalEntryDebug(e searchtime.Entry) ([]byte, error) {
	return json.Marshal(e)
}
