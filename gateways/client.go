package gateways

import (
	"io"
	"net/http"
	"time"
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// doWithRetry retries a request once on transport failure. Verification
// calls are idempotent on the provider side, so a single replay is safe
// and avoids leaving orders undecided on a flaky connection.
func doWithRetry(client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		if req.GetBody != nil {
			if body, bodyErr := req.GetBody(); bodyErr == nil {
				req.Body = body
				resp, err = client.Do(req)
			}
		} else {
			resp, err = client.Do(req)
		}
	}
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}
