package event

type Type string

const (
	TypeUserRegistered Type = "user.registered"
	TypeRunSubmitted   Type = "run.submitted"
	TypeRunConfirmed   Type = "run.confirmed"
	TypeGameRated      Type = "game.rated"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// UserRegisteredPayload rides on TypeUserRegistered events.
type UserRegisteredPayload struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

// RunConfirmedPayload rides on TypeRunConfirmed events.
type RunConfirmedPayload struct {
	RunID int64  `json:"run_id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func()) // Returns channel and unsubscribe function
}
