//go:build unit
// +build unit

package bookings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
)

func TestActor_Permissions(t *testing.T) {
	clientID := uuid.NewString()
	contractorID := uuid.NewString()
	b := &Booking{ClientID: clientID, ContractorID: &contractorID}

	owner := Actor{Caller: auth.Caller{UserID: clientID, Role: auth.RoleClient}}
	stranger := Actor{Caller: auth.Caller{UserID: uuid.NewString(), Role: auth.RoleClient}}
	assigned := Actor{Caller: auth.Caller{UserID: uuid.NewString(), Role: auth.RoleContractor}, ContractorID: contractorID}
	otherContractor := Actor{Caller: auth.Caller{UserID: uuid.NewString(), Role: auth.RoleContractor}, ContractorID: uuid.NewString()}
	manager := Actor{Caller: auth.Caller{UserID: uuid.NewString(), Role: auth.RoleManager}}

	tests := []struct {
		name     string
		actor    Actor
		view     bool
		capture  bool
		complete bool
	}{
		{"client owner", owner, true, false, false},
		{"other client", stranger, false, false, false},
		{"assigned contractor", assigned, true, true, true},
		{"other contractor", otherContractor, false, false, false},
		{"manager", manager, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.view, tt.actor.CanView(b))
			assert.Equal(t, tt.view, tt.actor.CanCancel(b))
			assert.Equal(t, tt.capture, tt.actor.CanCapture(b))
			assert.Equal(t, tt.complete, tt.actor.CanComplete(b))
		})
	}
}

func TestActor_CanAnswer(t *testing.T) {
	contractorID := uuid.NewString()
	r := &BookingRequest{ContractorID: contractorID}

	assert.True(t, Actor{Caller: auth.Caller{Role: auth.RoleContractor}, ContractorID: contractorID}.CanAnswer(r))
	assert.True(t, Actor{Caller: auth.Caller{Role: auth.RoleAdmin}}.CanAnswer(r))
	assert.False(t, Actor{Caller: auth.Caller{Role: auth.RoleManager}}.CanAnswer(r))
	assert.False(t, Actor{Caller: auth.Caller{Role: auth.RoleContractor}}.CanAnswer(r))
}

func TestActor_Scope(t *testing.T) {
	userID := uuid.NewString()
	contractorID := uuid.NewString()
	other := uuid.NewString()

	q := NewQuery()
	q.ClientID = &other
	Actor{Caller: auth.Caller{UserID: userID, Role: auth.RoleClient}}.Scope(q)
	assert.Equal(t, userID, *q.ClientID)

	q = NewQuery()
	Actor{Caller: auth.Caller{UserID: userID, Role: auth.RoleContractor}, ContractorID: contractorID}.Scope(q)
	assert.Equal(t, contractorID, *q.ContractorID)
	assert.Nil(t, q.ClientID)

	q = NewQuery()
	q.ClientID = &other
	Actor{Caller: auth.Caller{UserID: userID, Role: auth.RoleAdmin}}.Scope(q)
	assert.Equal(t, other, *q.ClientID)
}
