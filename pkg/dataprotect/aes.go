/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	keySizeDiv = 8

	// DefaultKeyLength is the data key size in bits used by the protected store.
	DefaultKeyLength = 256
)

// AES seals payloads with AES-GCM under a freshly generated key. The nonce is
// prepended to the ciphertext.
type AES struct {
	keyLength int
}

func NewAES(keyLength int) *AES {
	return &AES{
		keyLength: keyLength,
	}
}

func (a *AES) Encrypt(data []byte) ([]byte, []byte, error) {
	key := make([]byte, a.keyLength/keySizeDiv)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, nil, fmt.Errorf("generate key: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, data, nil), key, nil
}

func (a *AES) Decrypt(data []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(data) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
