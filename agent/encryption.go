// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// AESEncryption encrypts agent list documents with AES CTR.
// Ciphertext is hex encoded with the IV prepended.
type AESEncryption struct {
	block cipher.Block
}

func NewAESEncryption(key []byte) (*AESEncryption, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return &AESEncryption{
		block: block,
	}, nil
}

func (ae *AESEncryption) Encrypt(data []byte) (string, error) {
	dst := make([]byte, aes.BlockSize+len(data))
	iv := dst[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCTR(ae.block, iv)
	stream.XORKeyStream(dst[aes.BlockSize:], data)
	return hex.EncodeToString(dst), nil
}

func (ae *AESEncryption) Decrypt(data string) ([]byte, error) {
	bytes, err := hex.DecodeString(data)
	if err != nil {
		return nil, err
	}
	if len(bytes) < aes.BlockSize {
		return nil, fmt.Errorf("ciphertext shorter than iv")
	}

	stream := cipher.NewCTR(ae.block, bytes[:aes.BlockSize])
	dst := make([]byte, len(bytes)-aes.BlockSize)
	stream.XORKeyStream(dst, bytes[aes.BlockSize:])
	return dst, nil
}
