// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/water4699/frost-key-chain/counter"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/mode"
	"github.com/water4699/frost-key-chain/publish"
)

// Handler - the method set served by the HTTPS gateway
type Handler interface {
	SetAllow(allow map[string][]*net.IPNet)
	Root(w http.ResponseWriter, r *http.Request)
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	sync.RWMutex // to protect the allow map during runtime reload

	log                *logger.L
	server             *rpc.Server
	ledger             ledger.Ledger
	start              time.Time
	version            string
	maximumConnections uint64
	count              counter.Counter
	allow              map[string][]*net.IPNet
}

// New - create the gateway handler
func New(
	log *logger.L,
	server *rpc.Server,
	l ledger.Ledger,
	start time.Time,
	version string,
	maximumConnections uint64,
) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		ledger:             l,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the per path client allow lists
//
// called once during startup and again whenever the configuration
// file watcher sees a change
func (s *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	s.Lock()
	s.allow = allow
	s.Unlock()
}

// Root - this matches anything not matched and returns error
func (s *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (s *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// Details - to allow a GET for the same response as the Node.Info RPC
// (restricted to the configured allow list)
func (s *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	type recordCounts struct {
		Temperatures uint64 `json:"temperatures"`
		Keys         uint64 `json:"keys"`
	}
	type theReply struct {
		Network   string       `json:"network"`
		Mode      string       `json:"mode"`
		Records   recordCounts `json:"records"`
		RPCs      uint64       `json:"rpcs"`
		Version   string       `json:"version"`
		Uptime    string       `json:"uptime"`
		PublicKey string       `json:"publicKey"`
	}

	reply := theReply{
		Network: mode.NetworkName(),
		Mode:    mode.String(),
		Records: recordCounts{
			Temperatures: s.ledger.TemperatureCount(),
			Keys:         s.ledger.KeyCount(),
		},
		RPCs:      s.count.Uint64(),
		Version:   s.version,
		Uptime:    time.Since(s.start).String(),
		PublicKey: hex.EncodeToString(publish.PublicKey()),
	}

	sendReply(w, reply)
}

// check a remote address against one path's allow list
func (s *httpHandler) isAllowed(api string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}

	host := strings.Trim(r.RemoteAddr[:last], "[]")
	addr := net.ParseIP(host)
	if nil == addr {
		return false
	}

	s.RLock()
	defer s.RUnlock()

	set, ok := s.allow[api]
	if !ok {
		return false
	}

	for _, cidr := range set {
		if cidr.Contains(addr) {
			return true
		}
	}

	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "Too Many Requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
