package email

import (
	"context"
	"fmt"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
)

// Sender is a stub delivery channel; the real application hands rendered
// notifications to an external mailer.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, to string, n domain.Notification) error {
	fmt.Printf("send email to %s: %s - %s\n", to, n.Title, n.Message)
	return nil
}
