//go:build unit
// +build unit

package messaging

import (
	"context"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"

	"github.com/stretchr/testify/mock"
)

// MockNotificationService is a mock implementation of notifications.NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Handle(ctx context.Context, ev *bookings.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
