package models

import "time"

// UserRegistration is an audit record written for every successful
// register-user call.
type UserRegistration struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId"`
	At          time.Time `json:"at"`
	IPAddress   string    `json:"ipAddress"`
	Fingerprint string    `json:"fingerprint"`
	IsMobile    bool      `json:"isMobile"`
	Address     string    `json:"address"`
	Referrer    string    `json:"referrer"`
	LandingPage string    `json:"landingPage"`
	UserAgent   string    `json:"userAgent"`

	// ReferringUserID is empty when no referring user was resolved.
	ReferringUserID string `json:"referringUserId,omitempty"`
}
