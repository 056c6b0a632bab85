/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/tink/go/aead"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"
)

// KeyProtector wraps data keys with tink AEAD primitives registered by key ID.
// It satisfies the key protector contract of DataProtector: kh is the key ID.
type KeyProtector struct {
	mu    sync.RWMutex
	aeads map[string]tink.AEAD
}

func NewKeyProtector() *KeyProtector {
	return &KeyProtector{
		aeads: make(map[string]tink.AEAD),
	}
}

// Add registers the AEAD primitive of kh under keyID.
func (k *KeyProtector) Add(keyID string, kh *keyset.Handle) error {
	primitive, err := aead.New(kh)
	if err != nil {
		return fmt.Errorf("aead primitive for %q: %w", keyID, err)
	}

	k.mu.Lock()
	k.aeads[keyID] = primitive
	k.mu.Unlock()

	return nil
}

// Encrypt wraps msg. Tink embeds the nonce in the ciphertext, so no separate nonce is returned.
func (k *KeyProtector) Encrypt(msg, aad []byte, kh interface{}) ([]byte, []byte, error) {
	primitive, err := k.lookup(kh)
	if err != nil {
		return nil, nil, err
	}

	ct, err := primitive.Encrypt(msg, aad)
	if err != nil {
		return nil, nil, fmt.Errorf("aead encrypt: %w", err)
	}

	return ct, nil, nil
}

func (k *KeyProtector) Decrypt(cipher, aad, _ []byte, kh interface{}) ([]byte, error) {
	primitive, err := k.lookup(kh)
	if err != nil {
		return nil, err
	}

	pt, err := primitive.Decrypt(cipher, aad)
	if err != nil {
		return nil, fmt.Errorf("aead decrypt: %w", err)
	}

	return pt, nil
}

func (k *KeyProtector) lookup(kh interface{}) (tink.AEAD, error) {
	keyID, ok := kh.(string)
	if !ok {
		return nil, fmt.Errorf("unsupported key handle type %T", kh)
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	primitive, ok := k.aeads[keyID]
	if !ok {
		return nil, fmt.Errorf("key %q is not registered", keyID)
	}

	return primitive, nil
}

// NewKeyset generates an AES256-GCM keyset.
func NewKeyset() (*keyset.Handle, error) {
	return keyset.NewHandle(aead.AES256GCMKeyTemplate())
}

// ReadKeyset reads a cleartext JSON keyset, as written by WriteKeyset.
func ReadKeyset(r io.Reader) (*keyset.Handle, error) {
	kh, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(r))
	if err != nil {
		return nil, fmt.Errorf("read keyset: %w", err)
	}

	return kh, nil
}

// WriteKeyset writes kh as cleartext JSON.
func WriteKeyset(kh *keyset.Handle, w io.Writer) error {
	return insecurecleartextkeyset.Write(kh, keyset.NewJSONWriter(w))
}
