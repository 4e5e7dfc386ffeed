package mailer

import (
	"fmt"
	"strings"
)

// Message is the full contract the submission pipeline depends on. The
// transport protocol behind Send is an implementation detail.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Sender delivers one message. Implementations must be safe for concurrent
// use; each submission is an independent request-response cycle.
type Sender interface {
	Send(msg Message) error
}

// FormatFrom renders the fixed sender identity: display name plus the
// authenticated mailbox. A missing mailbox is a configuration error; the
// payload never influences either part.
func FormatFrom(displayName, mailbox string) (string, error) {
	mailbox = strings.TrimSpace(mailbox)
	if mailbox == "" {
		return "", fmt.Errorf("smtp user missing")
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "Website"
	}
	return fmt.Sprintf("%s <%s>", name, mailbox), nil
}
