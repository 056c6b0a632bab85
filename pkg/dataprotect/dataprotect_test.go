/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/hcert/pkg/dataprotect"
)

const (
	cryptoKeyID = "trust-store-key"
)

func TestDataProtectorEncrypt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		keyProtector := NewMockcrypto(gomock.NewController(t))
		encrypt := NewMockdataEncryptor(gomock.NewController(t))

		p := dataprotect.NewDataProtector(keyProtector, cryptoKeyID, encrypt)

		data := []byte{0x1, 0x2, 0x66, 0x32}
		encryptedData := []byte{0x99, 0x55, 0x66}
		key := []byte{0x12}
		encryptedKey := []byte{0x88, 0x77}
		nonce := []byte{0x5}

		encrypt.EXPECT().Encrypt(data).
			Return(encryptedData, key, nil)
		keyProtector.EXPECT().
			Encrypt(key, nil, cryptoKeyID).
			Return(encryptedKey, nonce, nil)

		enc, err := p.Encrypt(context.TODO(), data)
		assert.NoError(t, err)

		assert.Equal(t, encryptedData, enc.Encrypted)
		assert.Equal(t, nonce, enc.EncryptedNonce)
		assert.Equal(t, encryptedKey, enc.EncryptedKey)
	})

	t.Run("data encrypt err", func(t *testing.T) {
		keyProtector := NewMockcrypto(gomock.NewController(t))
		encrypt := NewMockdataEncryptor(gomock.NewController(t))

		p := dataprotect.NewDataProtector(keyProtector, cryptoKeyID, encrypt)
		encrypt.EXPECT().Encrypt(gomock.Any()).
			Return(nil, nil, errors.New("data encrypt err"))

		resp, err := p.Encrypt(context.TODO(), []byte{0x0})
		assert.ErrorContains(t, err, "data encrypt err")
		assert.Empty(t, resp)
	})

	t.Run("wrap key err", func(t *testing.T) {
		keyProtector := NewMockcrypto(gomock.NewController(t))
		encrypt := NewMockdataEncryptor(gomock.NewController(t))

		p := dataprotect.NewDataProtector(keyProtector, cryptoKeyID, encrypt)
		encrypt.EXPECT().Encrypt(gomock.Any()).
			Return(nil, nil, nil)
		keyProtector.EXPECT().Encrypt(gomock.Any(), nil, cryptoKeyID).
			Return(nil, nil, errors.New("encrypt err"))

		resp, err := p.Encrypt(context.TODO(), []byte{0x0})
		assert.ErrorContains(t, err, "wrap data key: encrypt err")
		assert.Empty(t, resp)
	})
}

func TestDataProtectorDecrypt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		keyProtector := NewMockcrypto(gomock.NewController(t))
		dataEncryptor := NewMockdataEncryptor(gomock.NewController(t))

		p := dataprotect.NewDataProtector(keyProtector, cryptoKeyID, dataEncryptor)

		data := []byte{0x1, 0x2, 0x66, 0x32}
		encryptedData := []byte{0x99, 0x55, 0x66}
		key := []byte{0x12}
		encryptedKey := []byte{0x88, 0x77}
		nonce := []byte{0x5}

		keyProtector.EXPECT().
			Decrypt(encryptedKey, nil, nonce, cryptoKeyID).
			Return(key, nil)
		dataEncryptor.EXPECT().Decrypt(encryptedData, key).
			Return(data, nil)

		dec, err := p.Decrypt(context.TODO(), &dataprotect.EncryptedData{
			Encrypted:      encryptedData,
			EncryptedKey:   encryptedKey,
			EncryptedNonce: nonce,
		})
		assert.NoError(t, err)
		assert.Equal(t, data, dec)
	})

	t.Run("fail unwrap key", func(t *testing.T) {
		keyProtector := NewMockcrypto(gomock.NewController(t))
		dataEncryptor := NewMockdataEncryptor(gomock.NewController(t))

		p := dataprotect.NewDataProtector(keyProtector, cryptoKeyID, dataEncryptor)

		keyProtector.EXPECT().
			Decrypt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("can not decrypt key"))

		dec, err := p.Decrypt(context.TODO(), &dataprotect.EncryptedData{
			Encrypted:    []byte{0x99},
			EncryptedKey: []byte{0x88},
		})
		assert.ErrorContains(t, err, "can not decrypt key")
		assert.Nil(t, dec)
	})

	t.Run("fail decrypt data", func(t *testing.T) {
		keyProtector := NewMockcrypto(gomock.NewController(t))
		dataEncryptor := NewMockdataEncryptor(gomock.NewController(t))

		p := dataprotect.NewDataProtector(keyProtector, cryptoKeyID, dataEncryptor)

		keyProtector.EXPECT().
			Decrypt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte{0x12}, nil)
		dataEncryptor.EXPECT().Decrypt(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("can not decrypt data"))

		dec, err := p.Decrypt(context.TODO(), &dataprotect.EncryptedData{
			Encrypted:    []byte{0x99},
			EncryptedKey: []byte{0x88},
		})
		assert.ErrorContains(t, err, "can not decrypt data")
		assert.Nil(t, dec)
	})
}

func TestDataProtectorWithTink(t *testing.T) {
	kh, err := dataprotect.NewKeyset()
	require.NoError(t, err)

	keys := dataprotect.NewKeyProtector()
	require.NoError(t, keys.Add(cryptoKeyID, kh))

	p := dataprotect.NewDataProtector(keys, cryptoKeyID, dataprotect.NewAES(dataprotect.DefaultKeyLength))

	msg := []byte(`{"revokedCerts":["a","b"]}`)

	enc, err := p.Encrypt(context.Background(), msg)
	require.NoError(t, err)
	require.NotContains(t, string(enc.Encrypted), "revokedCerts")
	require.NotEmpty(t, enc.EncryptedKey)

	dec, err := p.Decrypt(context.Background(), enc)
	require.NoError(t, err)
	require.Equal(t, msg, dec)
}

func TestNilDataProtector(t *testing.T) {
	p := dataprotect.NewNilDataProtector()
	msg := []byte("plain record")

	enc, err := p.Encrypt(context.Background(), msg)
	require.NoError(t, err)
	require.Equal(t, msg, enc.Encrypted)
	require.Nil(t, enc.EncryptedKey)

	dec, err := p.Decrypt(context.Background(), enc)
	require.NoError(t, err)
	require.Equal(t, msg, dec)
}
