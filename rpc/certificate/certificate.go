// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/util"
)

// Get - verify a PEM certificate and key, returning the TLS
// configuration and the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// ReadFiles - read a certificate and key pair from disk for Get
func ReadFiles(certificateFileName string, keyFileName string) (string, string, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}

// MakeSelfSigned - create a self-signed certificate and key
func MakeSelfSigned(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	org := "productd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}
	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}
	return nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in productd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
