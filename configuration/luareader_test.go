// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/configuration"
)

type product struct {
	Name  string `gluamapper:"name"`
	Owner string `gluamapper:"owner"`
}

type settings struct {
	DataDirectory string    `gluamapper:"data_directory"`
	Chain         string    `gluamapper:"chain"`
	Interval      int       `gluamapper:"block_interval"`
	Products      []product `gluamapper:"products"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "productd.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local M = {}
M.data_directory = data_directory .. "/data"
M.chain = "testing"
M.block_interval = 15
M.products = {
  { name = "alpha", owner = "owner-one" },
  { name = "beta", owner = "owner-two" },
}
assert(arg[0] ~= nil)
return M
`)
	defer cleanup()

	s := settings{}
	err := configuration.ParseConfigurationFile(fileName, &s, map[string]string{
		"data_directory": "/var/lib/productd",
	})
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, "/var/lib/productd/data", s.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", s.Chain, "wrong chain")
	assert.Equal(t, 15, s.Interval, "wrong interval")
	assert.Equal(t, []product{{"alpha", "owner-one"}, {"beta", "owner-two"}}, s.Products, "wrong products")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	fileName, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	s := settings{}
	err := configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.NotNil(t, err, "non table accepted")
}

func TestParseConfigurationFileSyntaxError(t *testing.T) {
	fileName, cleanup := writeFile(t, `local M = {`)
	defer cleanup()

	s := settings{}
	err := configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	s := settings{}
	err := configuration.ParseConfigurationFile("/nonexistent/productd.conf", &s, nil)
	assert.NotNil(t, err, "missing file accepted")
}
