package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *client) Geolocation(ctx context.Context, ip string) (*GeoRecord, error) {
	return doWithRetry(ctx, c, "geolocation",
		func(ctx context.Context) (*http.Response, error) {
			httpReq, err := http.NewRequestWithContext(ctx, "GET", c.geoBaseURL+"/"+ip+"/json", nil)
			if err != nil {
				return nil, fmt.Errorf("creating request: %w", err)
			}
			httpReq.Header.Set("Accept", "application/json")
			if c.token != "" {
				httpReq.Header.Set("Authorization", "Bearer "+c.token)
			}
			return c.httpClient.Do(httpReq)
		},
		func(resp *http.Response) (*GeoRecord, error) {
			defer resp.Body.Close()
			var rec GeoRecord
			if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
				return nil, fmt.Errorf("decoding response: %w", err)
			}
			if rec.IP == "" {
				rec.IP = ip
			}
			return &rec, nil
		},
	)
}
