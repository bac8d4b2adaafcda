// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"
)

const shutdownTimeout = 5 * time.Second

// Server - background process serving /metrics
type Server struct {
	log      *logger.L
	listener net.Listener
	server   *http.Server
}

// Handler - the HTTP routes of the metrics server
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// NewServer - bind the listen address; the server starts with Run
func NewServer(listen string) (*Server, error) {
	log := logger.New("metrics")

	listener, err := net.Listen("tcp", listen)
	if nil != err {
		log.Errorf("listen: %q  error: %s", listen, err)
		return nil, err
	}
	log.Infof("listen: %s", listener.Addr())

	return &Server{
		log:      log,
		listener: listener,
		server: &http.Server{
			Handler:      Handler(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// Addr - bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run - serve until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log
	log.Info("starting…")

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.server.Serve(s.listener)
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("serve error: %s", err)
		}
	}()

	<-shutdown
	log.Info("shutting down…")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.server.Shutdown(ctx)
	<-done

	log.Info("finished")
	log.Flush()
}
