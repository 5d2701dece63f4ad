package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	key      string
	from     string
}

// NewHTTP posts to a JSON transactional-mail API (endpoint + bearer key).
func NewHTTP(endpoint, key, from string) Client {
	return &httpClient{endpoint: endpoint, key: key, from: from}
}

func (c *httpClient) Send(to, subject, htmlBody string) error {
	reqBody := map[string]any{
		"from":    c.from,
		"to":      []string{to},
		"subject": subject,
		"html":    htmlBody,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail api: unexpected status %d", resp.StatusCode)
	}
	return nil
}
