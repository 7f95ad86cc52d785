// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/sha3"
)

const addressLength = 20

var (
	// ErrInvalidPublicKey is returned when a public key PEM cannot be
	// parsed as an ECDSA P-256 key.
	ErrInvalidPublicKey = errors.New("public key is not valid")
	// ErrInvalidPrivateKey is returned when a private key PEM cannot be
	// parsed as an ECDSA P-256 key.
	ErrInvalidPrivateKey = errors.New("private key is not valid")
)

// keyService is the private implementation of [KeyService].
type keyService struct {
	method *jwt.SigningMethodECDSA
}

// NewKeyService constructs a [KeyService] signing with ES256.
func NewKeyService() KeyService {
	return &keyService{method: jwt.SigningMethodES256}
}

// GenerateKeyInfo implements [KeyService].
func (k *keyService) GenerateKeyInfo() (KeyInfo, error) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("error generating key: %w", err)
	}

	return keyInfo(privateKey)
}

// KeyInfoFromPrivateKey implements [KeyService].
func (k *keyService) KeyInfoFromPrivateKey(privateKeyPEM string) (KeyInfo, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return KeyInfo{}, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	return keyInfo(privateKey)
}

func keyInfo(privateKey *ecdsa.PrivateKey) (KeyInfo, error) {
	der, err := x509.MarshalECPrivateKey(privateKey)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("error encoding private key: %w", err)
	}
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})

	pubDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return KeyInfo{}, fmt.Errorf("error encoding public key: %w", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	raw, err := addressBytes(&privateKey.PublicKey)
	if err != nil {
		return KeyInfo{}, err
	}

	return KeyInfo{
		PrivateKeyPEM: string(privatePEM),
		PublicKeyPEM:  string(publicPEM),
		Address:       base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// DeriveAddress implements [KeyService]. The address is the last 20 bytes
// of the Keccak-256 hash of the uncompressed public point (without its
// 0x04 prefix), base64 encoded.
func (k *keyService) DeriveAddress(publicKeyPEM string) (string, error) {
	publicKey, err := parsePublicKey(publicKeyPEM)
	if err != nil {
		return "", err
	}

	raw, err := addressBytes(publicKey)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Sign implements [KeyService].
func (k *keyService) Sign(value string, privateKeyPEM string) (string, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	signature, err := k.method.Sign(value, privateKey)
	if err != nil {
		return "", fmt.Errorf("error signing value: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(signature), nil
}

// Verify implements [KeyService].
func (k *keyService) Verify(value string, publicKeyPEM string, signature string) (bool, error) {
	publicKey, err := parsePublicKey(publicKeyPEM)
	if err != nil {
		return false, err
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return false, nil
	}

	if err := k.method.Verify(value, sig, publicKey); err != nil {
		return false, nil
	}

	return true, nil
}

func parsePublicKey(publicKeyPEM string) (*ecdsa.PublicKey, error) {
	publicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	if publicKey.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: unsupported curve %s", ErrInvalidPublicKey, publicKey.Curve.Params().Name)
	}

	return publicKey, nil
}

func addressBytes(publicKey *ecdsa.PublicKey) ([]byte, error) {
	ecdhKey, err := publicKey.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	// uncompressed point: 0x04 || X || Y
	point := ecdhKey.Bytes()

	hash := sha3.NewLegacyKeccak256()
	hash.Write(point[1:])
	sum := hash.Sum(nil)

	return sum[len(sum)-addressLength:], nil
}
