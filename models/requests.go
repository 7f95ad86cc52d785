package models

// RestRequest is the signed envelope every dynamic endpoint accepts.
// Details holds a JSON document whose exact bytes were signed.
type RestRequest struct {
	SessionID string `json:"sessionId"`
	Version   int    `json:"version"`
	Details   string `json:"details"`
	Signature string `json:"signature"`
}

// Signable is the common part of every signed details document.
type Signable struct {
	Address     string `json:"address"`
	Fingerprint string `json:"fingerprint"`
	// Timestamp is the client clock in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Envelope returns the common signed fields.
func (s Signable) Envelope() Signable {
	return s
}

// Signer is implemented by every details type embedding Signable.
type Signer interface {
	Envelope() Signable
}

// RegisterUserDetails is the details document of register-user.
type RegisterUserDetails struct {
	Signable
	PublicKey  string `json:"publicKey"`
	Referrer   string `json:"referrer"`
	LandingURL string `json:"landingUrl"`
	UserAgent  string `json:"userAgent"`
}

// DeleteUserDetails is the details document of the admin delete-user call.
type DeleteUserDetails struct {
	Signable
	UserID string `json:"userId"`
}
