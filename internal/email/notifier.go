package email

import (
	"fmt"
	"log/slog"

	"speedrun-db-api/internal/event"
)

const (
	welcomeSubject = "Welcome to the Speedruns Database!"
	welcomeBody    = "Dear Speedrun Enthusiast,\n\n" +
		"Welcome to the Speedruns Database, your gateway to the thrilling world of game speedrunning! " +
		"We're delighted that you've joined our community dedicated to the pursuit of speed and skill in gaming.\n" +
		"Get ready for an exciting journey through the realm of Speedruns!\n\n" +
		"Best regards,\n\nThe Speedruns Database Team"
)

// Notifier consumes domain events and turns them into mail. It runs on its
// own goroutine so slow SMTP servers never sit on the request path.
type Notifier struct {
	sender Sender
	bus    event.Bus
}

func NewNotifier(sender Sender, bus event.Bus) *Notifier {
	return &Notifier{sender: sender, bus: bus}
}

// Run blocks until the subscription channel is closed via Stop-less bus
// teardown or the process exits.
func (n *Notifier) Run() {
	events, unsubscribe := n.bus.Subscribe()
	defer unsubscribe()

	for e := range events {
		switch e.Type {
		case event.TypeUserRegistered:
			payload, ok := e.Payload.(event.UserRegisteredPayload)
			if !ok {
				continue
			}
			n.send(payload.Email, welcomeSubject, welcomeBody)
		case event.TypeRunConfirmed:
			payload, ok := e.Payload.(event.RunConfirmedPayload)
			if !ok {
				continue
			}
			body := fmt.Sprintf("Hi %s,\n\nYour run #%d has been confirmed by a moderator.\n\nThe Speedruns Database Team",
				payload.Login, payload.RunID)
			n.send(payload.Email, "Your run has been confirmed", body)
		}
	}
}

func (n *Notifier) send(to string, subject string, body string) {
	if to == "" {
		return
	}
	if err := n.sender.Send(to, subject, body); err != nil {
		slog.Error("notification mail failed", "subject", subject, "error", err)
	}
}
