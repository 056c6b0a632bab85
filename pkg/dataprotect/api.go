/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import "context"

// Protector seals trust-store records before they reach a scoped store.
type Protector interface {
	Encrypt(ctx context.Context, msg []byte) (*EncryptedData, error)
	Decrypt(ctx context.Context, encryptedData *EncryptedData) ([]byte, error)
}

// Compressor shrinks records before encryption.
type Compressor interface {
	Compress(input []byte) ([]byte, error)
	Decompress(input []byte) ([]byte, error)
}

// EncryptedData is the envelope persisted for a sealed record. Encrypted holds the
// payload sealed with a one-time data key; EncryptedKey holds that data key wrapped
// by the key protector.
type EncryptedData struct {
	Encrypted      []byte `json:"encrypted"`
	EncryptedKey   []byte `json:"encrypted_key"`
	EncryptedNonce []byte `json:"encrypted_nonce"`
}
