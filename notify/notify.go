// Package notify holds the outbound side-effect relays: the chat channel used
// for user alerts and failure reports, the FCM push relay and the mail relay.
// Every call is best-effort single-attempt; callers must not fail the primary
// request on a relay error.
package notify

// Notifier relays free text to the chat channel.
type Notifier interface {
	Send(text string) error
}

// Notification is a push payload.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// Pusher delivers a push notification to a device token.
type Pusher interface {
	Push(deviceToken string, n Notification) error
}

// Mailer delivers a plain-text letter.
type Mailer interface {
	Mail(to, subject, body string) error
}

// Noop satisfies all three interfaces; the default until wiring replaces it.
type Noop struct{}

func (Noop) Send(string) error                 { return nil }
func (Noop) Push(string, Notification) error   { return nil }
func (Noop) Mail(string, string, string) error { return nil }
