package paws

import "net/http"

const (
	DefaultBaseURL = "https://api.paws.community/v1"
	appOrigin      = "https://app.paws.community"
	mobileAgent    = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"
)

// DefaultHeaders is the header set the web app sends with every call.
func DefaultHeaders() http.Header {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Accept-Language", "en-US,en;q=0.9")
	headers.Set("Origin", appOrigin)
	headers.Set("Referer", appOrigin+"/")
	headers.Set("Sec-Fetch-Dest", "empty")
	headers.Set("Sec-Fetch-Mode", "cors")
	headers.Set("Sec-Fetch-Site", "same-site")
	headers.Set("User-Agent", mobileAgent)
	return headers
}
