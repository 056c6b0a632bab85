/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"context"
	"fmt"
)

//go:generate mockgen -source dataprotect.go -destination dataprotect_mocks_test.go -package dataprotect_test

type crypto interface {
	Encrypt(msg, aad []byte, kh interface{}) ([]byte, []byte, error)
	Decrypt(cipher, aad, nonce []byte, kh interface{}) ([]byte, error)
}

type dataEncryptor interface {
	Encrypt(data []byte) ([]byte, []byte, error)
	Decrypt(encryptedData []byte, key []byte) ([]byte, error)
}

// DataProtector performs envelope encryption: the payload is sealed by dataEncryptor
// with a fresh key, and that key is wrapped by keyProtector under cryptoKeyID.
type DataProtector struct {
	keyProtector  crypto
	cryptoKeyID   string
	dataEncryptor dataEncryptor
}

func NewDataProtector(
	keyProtector crypto,
	cryptoKeyID string,
	dataEncryptor dataEncryptor,
) *DataProtector {
	return &DataProtector{
		keyProtector:  keyProtector,
		cryptoKeyID:   cryptoKeyID,
		dataEncryptor: dataEncryptor,
	}
}

func (d *DataProtector) Encrypt(_ context.Context, msg []byte) (*EncryptedData, error) {
	encrypted, key, err := d.dataEncryptor.Encrypt(msg)
	if err != nil {
		return nil, fmt.Errorf("encrypt data: %w", err)
	}

	encryptedKey, nonce, err := d.keyProtector.Encrypt(key, nil, d.cryptoKeyID)
	if err != nil {
		return nil, fmt.Errorf("wrap data key: %w", err)
	}

	return &EncryptedData{
		Encrypted:      encrypted,
		EncryptedKey:   encryptedKey,
		EncryptedNonce: nonce,
	}, nil
}

func (d *DataProtector) Decrypt(_ context.Context, encryptedData *EncryptedData) ([]byte, error) {
	key, err := d.keyProtector.Decrypt(encryptedData.EncryptedKey, nil, encryptedData.EncryptedNonce, d.cryptoKeyID)
	if err != nil {
		return nil, fmt.Errorf("unwrap data key: %w", err)
	}

	data, err := d.dataEncryptor.Decrypt(encryptedData.Encrypted, key)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}

	return data, nil
}
