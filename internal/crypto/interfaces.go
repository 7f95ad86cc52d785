package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_service_mock.go -package=mock

// KeyService derives account addresses from public keys and signs or
// verifies byte strings with ES256 (ECDSA P-256, SHA-256).
//
// Keys travel as PEM text: public keys as PKIX "PUBLIC KEY" blocks and
// private keys as SEC 1 "EC PRIVATE KEY" blocks. Signatures travel as
// unpadded base64url strings.
type KeyService interface {
	// GenerateKeyInfo creates a fresh key pair. Used by simulated clients
	// and tests; the server never holds private keys.
	GenerateKeyInfo() (KeyInfo, error)

	// KeyInfoFromPrivateKey rebuilds the full [KeyInfo] of an existing
	// private key. Returns ErrInvalidPrivateKey when it cannot be parsed.
	KeyInfoFromPrivateKey(privateKeyPEM string) (KeyInfo, error)

	// DeriveAddress returns the address of publicKeyPEM. The result is
	// deterministic for a given key. Returns ErrInvalidPublicKey when the
	// key cannot be parsed.
	DeriveAddress(publicKeyPEM string) (string, error)

	// Sign signs value with privateKeyPEM.
	Sign(value string, privateKeyPEM string) (string, error)

	// Verify reports whether signature is a valid signature of value under
	// publicKeyPEM. A signature that does not verify, or cannot be decoded,
	// yields (false, nil). An unparseable key yields ErrInvalidPublicKey.
	Verify(value string, publicKeyPEM string, signature string) (bool, error)
}

// KeyInfo bundles every representation of a generated key pair.
type KeyInfo struct {
	PrivateKeyPEM string
	PublicKeyPEM  string
	Address       string
}
