package bookings

import "github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

// Actor is an authenticated caller resolved against bookings. ContractorID
// is set when the caller owns a contractor profile.
type Actor struct {
	auth.Caller
	ContractorID string
}

// CanView reports whether the actor may read b
func (a Actor) CanView(b *Booking) bool {
	return a.IsStaff() || b.ClientID == a.UserID || b.AssignedTo(a.ContractorID)
}

// CanCancel reports whether the actor may cancel b
func (a Actor) CanCancel(b *Booking) bool {
	return a.CanView(b)
}

// CanCapture reports whether the actor may charge the payment of b
func (a Actor) CanCapture(b *Booking) bool {
	return a.IsStaff() || b.AssignedTo(a.ContractorID)
}

// CanComplete reports whether the actor may mark b completed
func (a Actor) CanComplete(b *Booking) bool {
	return a.CanCapture(b)
}

// CanAnswer reports whether the actor may accept or refuse r
func (a Actor) CanAnswer(r *BookingRequest) bool {
	return a.Role == auth.RoleAdmin || (a.ContractorID != "" && r.ContractorID == a.ContractorID)
}

// Scope restricts q to what the actor may list
func (a Actor) Scope(q *Query) {
	if a.IsStaff() {
		return
	}
	if a.ContractorID != "" && a.Role == auth.RoleContractor {
		id := a.ContractorID
		q.ContractorID = &id
		q.ClientID = nil
		return
	}
	id := a.UserID
	q.ClientID = &id
	q.ContractorID = nil
}
