package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const cardCipherInfo = "credit-card-service/card-number/v1"

// CardCipher implements ports.CardCipher using AES-256-GCM with a synthetic
// nonce: the nonce is HMAC-SHA256(macKey, plaintext) truncated to the GCM
// nonce size, so a given key always maps a number to the same ciphertext.
type CardCipher struct {
	aead   cipher.AEAD
	macKey []byte
}

// NewCardCipher derives the encryption and MAC subkeys from secret with
// HKDF-SHA256.
func NewCardCipher(secret string) (*CardCipher, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("card encryption key is empty")
	}

	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(cardCipherInfo))
	keys := make([]byte, 64)
	if _, err := io.ReadFull(kdf, keys); err != nil {
		return nil, fmt.Errorf("deriving card keys: %w", err)
	}

	block, err := aes.NewCipher(keys[:32])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return &CardCipher{aead: aead, macKey: keys[32:]}, nil
}

// Encrypt returns hex(nonce || ciphertext).
func (c *CardCipher) Encrypt(plaintext string) (string, error) {
	nonce := c.nonceFor([]byte(plaintext))
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt under the same key.
func (c *CardCipher) Decrypt(ciphertextHex string) (string, error) {
	raw, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}
	if !hmac.Equal(nonce, c.nonceFor(plaintext)) {
		return "", errors.New("synthetic nonce mismatch")
	}

	return string(plaintext), nil
}

func (c *CardCipher) nonceFor(plaintext []byte) []byte {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write(plaintext)
	return mac.Sum(nil)[:c.aead.NonceSize()]
}
