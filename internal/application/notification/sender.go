// Package notification defines the outbound notification port. Delivery
// failures are logged and never fail the triggering operation.
package notification

import "context"

// Message is a notification rendered from Markdown before delivery.
type Message struct {
	To           string
	Subject      string
	BodyMarkdown string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
