/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/hcert/pkg/truststore"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type jwkParams struct {
	N   string `json:"n"`
	E   string `json:"e"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

func publicJWK(t *testing.T, key interface{}) jwkParams {
	t.Helper()

	raw, err := json.Marshal(jose.JSONWebKey{Key: key})
	require.NoError(t, err)

	var p jwkParams
	require.NoError(t, json.Unmarshal(raw, &p))

	return p
}

func newRSACertificate(t *testing.T, keyID, use string) (truststore.ActiveCertificate, *rsa.PublicKey) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	p := publicJWK(t, &priv.PublicKey)

	return truststore.ActiveCertificate{
		KeyID: keyID,
		Use:   use,
		Alg:   truststore.AlgorithmRS256,
		N:     p.N,
		E:     p.E,
	}, &priv.PublicKey
}

func newECCertificate(t *testing.T, keyID, use string) (truststore.ActiveCertificate, *ecdsa.PublicKey) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	p := publicJWK(t, &priv.PublicKey)

	return truststore.ActiveCertificate{
		KeyID: keyID,
		Use:   use,
		Alg:   truststore.AlgorithmES256,
		Crv:   p.Crv,
		X:     p.X,
		Y:     p.Y,
	}, &priv.PublicKey
}

type archiveEntry struct {
	name    string
	content []byte
}

func buildArchive(t *testing.T, entries ...archiveEntry) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	for _, e := range entries {
		f, err := w.Create(e.name)
		require.NoError(t, err)

		_, err = f.Write(e.content)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	return buf.Bytes()
}

func keyIDs(descriptors []truststore.PublicKeyDescriptor) []string {
	ids := make([]string, 0, len(descriptors))

	for _, d := range descriptors {
		ids = append(ids, d.KeyID)
	}

	return ids
}
