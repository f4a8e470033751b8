package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// Recorder keeps messages instead of sending them. When Out is set each
// message is also written there as a readable preview.
type Recorder struct {
	Out      io.Writer
	Messages []models.Message
}

// Send records msg.
func (r *Recorder) Send(ctx context.Context, msg models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Messages = append(r.Messages, msg)

	if r.Out != nil {
		if _, err := fmt.Fprintf(r.Out, "To: %s\nSubject: %s\n\n%s\n", msg.To, msg.Subject, msg.HTMLBody); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}
	return nil
}
