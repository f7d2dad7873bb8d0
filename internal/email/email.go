package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.PassengerEmail == "" {
		return nil
	}
	fmt.Printf("send email to %s about %s for flight %d (booking %s)\n",
		event.PassengerEmail, event.Type, event.FlightID, event.Reference)
	return nil
}
