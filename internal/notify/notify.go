// Package notify delivers out-of-band notices when a participant registers.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/VZ1308/EventManagementSystem/internal/model"
)

// Notifier sends a registration notice. Implementations are best effort:
// delivery problems are theirs to log, never the caller's to handle.
type Notifier interface {
	Notify(ctx context.Context, event *model.Event, participant *model.Participant)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(ctx context.Context, event *model.Event, participant *model.Participant)

func (f NotifierFunc) Notify(ctx context.Context, event *model.Event, participant *model.Participant) {
	f(ctx, event, participant)
}

// Nop discards every notice.
var Nop Notifier = NotifierFunc(func(context.Context, *model.Event, *model.Participant) {})

// EmailNotifier simulates an email send by writing the message to out.
type EmailNotifier struct {
	out    io.Writer
	sender string
	logger zerolog.Logger
}

// NewEmailNotifier constructs an EmailNotifier.
func NewEmailNotifier(out io.Writer, sender string, logger zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{out: out, sender: sender, logger: logger}
}

// Notify writes one line per notice. A failed write is logged and dropped.
func (n *EmailNotifier) Notify(ctx context.Context, event *model.Event, participant *model.Participant) {
	messageID := uuid.NewString()
	_, err := fmt.Fprintf(n.out, "Email sent to %s: participant %s was added to event %s.\n",
		participant.Email(), participant.Name(), event.Name())
	if err != nil {
		n.logger.Error().Err(err).
			Str("message_id", messageID).
			Str("to", participant.Email()).
			Msg("email notification failed")
		return
	}
	n.logger.Debug().
		Str("message_id", messageID).
		Str("from", n.sender).
		Str("to", participant.Email()).
		Str("event_id", event.ID()).
		Msg("email notification sent")
}
