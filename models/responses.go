package models

// RestResponse carries the fields common to every dynamic response.
type RestResponse struct {
	ServerVersion int `json:"serverVersion"`
}

// RegisterUserResponse is returned by a successful register-user call.
type RegisterUserResponse struct {
	RestResponse
	SessionID string `json:"sessionId"`
	ID        string `json:"id"`
	Admin     bool   `json:"admin"`
}

// DeleteUserResponse is returned by a successful delete-user call.
type DeleteUserResponse struct {
	RestResponse
	ID string `json:"id"`
}

// PingResponse is the body of GET /ping.
type PingResponse struct {
	Product  string `json:"product"`
	Status   string `json:"status"`
	Version  int    `json:"version"`
	Deployed string `json:"deployed"`
	Server   string `json:"server"`
	Build    string `json:"build,omitempty"`
}

// ClientInfo describes the caller of an HTTP request as seen by the
// server.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
