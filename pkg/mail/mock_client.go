package mail

import "log"

type mockClient struct{}

// NewMock logs instead of sending; used when no mail endpoint is
// configured so local runs still show what would have gone out.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Send(to, subject, htmlBody string) error {
	log.Printf("[mail-mock] to=%s subject=%q bytes=%d", to, subject, len(htmlBody))
	return nil
}
