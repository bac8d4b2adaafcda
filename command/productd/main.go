// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/background"
	"github.com/bitmark-inc/productd/block"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/metrics"
	"github.com/bitmark-inc/productd/mode"
	"github.com/bitmark-inc/productd/publish"
	"github.com/bitmark-inc/productd/registry"
	"github.com/bitmark-inc/productd/rpc"
	"github.com/bitmark-inc/productd/storage"
	"github.com/bitmark-inc/productd/wallet"
	"github.com/bitmark-inc/productd/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	variables := map[string]string{
		"version": version,
	}
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)
	metrics.BuildInfo.WithLabelValues(version, mode.ChainName()).Set(1)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	log.Debugf("%s = %#v", "Metrics", theConfiguration.Metrics)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// block header data
	log.Info("initialise blockheader")
	err = blockheader.Initialise()
	if nil != err {
		log.Criticalf("blockheader initialise error: %s", err)
		exitwithstatus.Message("blockheader initialise error: %s", err)
	}
	defer blockheader.Finalise()

	// the products served by this node
	funds := wallet.New()
	products := registry.New(funds)
	for _, p := range theConfiguration.Products {
		owner, err := account.FromBase58(p.Owner)
		if nil != err {
			log.Criticalf("product: %q  owner: %q  error: %s", p.Name, p.Owner, err)
			exitwithstatus.Message("product: %q  owner: %q  error: %s", p.Name, p.Owner, err)
		}
		if owner.IsTesting() != mode.IsTesting() {
			log.Criticalf("product: %q  owner: %q  is for the wrong network", p.Name, p.Owner)
			exitwithstatus.Message("product: %q  owner: %q  is for the wrong network", p.Name, p.Owner)
		}
		if _, err := products.Add(p.Name, owner); nil != err {
			log.Criticalf("product: %q  add error: %s", p.Name, err)
			exitwithstatus.Message("product: %q  add error: %s", p.Name, err)
		}
		log.Infof("serving product: %q", p.Name)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, products) {
		return
	}

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, products, funds)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// block production and the optional metrics endpoint
	interval := time.Duration(theConfiguration.Block.IntervalSeconds) * time.Second
	processes := background.Processes{
		block.NewProducer(clockwork.NewRealClock(), interval, func(height uint64) {
			metrics.BlockHeight.Set(float64(height))
		}),
	}
	if "" != theConfiguration.Metrics.Listen {
		server, err := metrics.NewServer(theConfiguration.Metrics.Listen)
		if nil != err {
			log.Criticalf("metrics initialise error: %s", err)
			exitwithstatus.Message("metrics initialise error: %s", err)
		}
		processes = append(processes, server)
	}
	metrics.BlockHeight.Set(float64(blockheader.Height()))
	running := background.Start(processes, nil)
	defer running.Stop()

	// accept state changes only once blocks are being produced
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
