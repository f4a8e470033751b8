// Package mail delivers report emails.
package mail

import (
	"context"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// Sender delivers a single message synchronously.
type Sender interface {
	Send(ctx context.Context, msg models.Message) error
}
