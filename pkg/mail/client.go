package mail

// Client sends notification email through whatever provider is
// configured. Implementations must not panic on provider failure.
type Client interface {
	Send(to, subject, htmlBody string) error
}
