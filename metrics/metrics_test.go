// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/background"
	"github.com/bitmark-inc/productd/metrics"
)

const testingDirName = "testing"

func setupTestLogger() {
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

func teardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestOperation(t *testing.T) {
	metrics.Operation("m1", "redeem", nil)
	metrics.Operation("m1", "redeem", errors.New("payout failed"))
	metrics.Operation("m1", "redeem", errors.New("payout failed"))

	ok := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("m1", "redeem", metrics.StatusOK))
	failed := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("m1", "redeem", metrics.StatusError))
	assert.Equal(t, float64(1), ok, "wrong ok count")
	assert.Equal(t, float64(2), failed, "wrong error count")
}

func TestProduct(t *testing.T) {
	metrics.Product("m2", 2000, 20)

	assert.Equal(t, float64(2000), testutil.ToFloat64(metrics.TotalSupply.WithLabelValues("m2")), "wrong supply")
	assert.Equal(t, float64(20), testutil.ToFloat64(metrics.PoolValue.WithLabelValues("m2")), "wrong pool")
}

func TestHandler(t *testing.T) {
	metrics.Product("m3", 1, 1)

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code, "wrong status")
	assert.True(t, strings.Contains(recorder.Body.String(), `productd_total_supply{product="m3"} 1`), "supply gauge missing")
}

func TestServer(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	s, err := metrics.NewServer("127.0.0.1:0")
	assert.Nil(t, err, "wrong NewServer")

	h := background.Start(background.Processes{s}, nil)
	defer h.Stop()

	response, err := http.Get("http://" + s.Addr().String() + "/metrics")
	assert.Nil(t, err, "wrong Get")
	defer response.Body.Close()

	body, _ := ioutil.ReadAll(response.Body)
	assert.True(t, strings.Contains(string(body), "productd_block_height"), "block height gauge missing")
}
