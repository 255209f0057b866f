package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jetcab/dispatch/internal/pkg/constants"
	natspkg "github.com/jetcab/dispatch/internal/pkg/nats"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

// NotifyGW delivers booking offers to taxis over their per-taxi NATS
// subject.
type NotifyGW struct {
	natsClient *natspkg.Client
}

// NewNotifyGateway creates a new notification gateway
func NewNotifyGateway(natsClient *natspkg.Client) *NotifyGW {
	return &NotifyGW{natsClient: natsClient}
}

// Send publishes the booking to the taxi's subject
func (g *NotifyGW) Send(ctx context.Context, taxiID uuid.UUID, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	subject := fmt.Sprintf(constants.SubjectTaxiBookings, taxiID)
	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish booking to %s: %w", subject, err)
	}

	return nil
}
