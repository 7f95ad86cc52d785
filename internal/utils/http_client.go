package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies outbound requests of this module.
const UserAgent = "copper-beam"

// HTTPClient embeds *resty.Client, so every resty method is available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends [UserAgent] and
// bounds every request by timeout. A non-positive timeout leaves requests
// unbounded.
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get("https://example.com")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
