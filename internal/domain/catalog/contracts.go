package catalog

import "context"

// ContractorService answers availability questions and assigns contractors to bookings
type ContractorService interface {
	// AvailableContractors lists active contractors offering the service whose
	// calendar is free for the whole requested slot.
	AvailableContractors(ctx context.Context, query *AvailabilityQuery) (*Availability, error)

	// IsAvailable reports whether contractorID can take slot, ignoring excludeBookingID.
	IsAvailable(ctx context.Context, contractorID string, slot Slot, excludeBookingID string) (bool, error)

	// GetByUserID resolves the contractor row of an authenticated user.
	GetByUserID(ctx context.Context, userID string) (*Contractor, error)
}

// ServiceRepository reads bookable services
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	// CountAvailableInMarket counts active services offered in marketID.
	CountAvailableInMarket(ctx context.Context, marketID string) (int64, error)
	SetMarketAvailability(ctx context.Context, serviceID, marketID string, available bool) error
}

// AddressService manages the addresses of the calling client. Addresses of
// other clients and removed addresses answer ErrAddressNotFound.
type AddressService interface {
	List(ctx context.Context, clientID string) ([]*Address, error)
	// Create stores a new address and infers its market from the country.
	Create(ctx context.Context, clientID string, input *AddressInput) (*Address, error)
	Update(ctx context.Context, id, clientID string, input *AddressInput) (*Address, error)
	// Delete hides the address; bookings keep their own copy of it.
	Delete(ctx context.Context, id, clientID string) error
}

// ProfileService reads and saves the profile of the calling user
type ProfileService interface {
	Get(ctx context.Context, userID string) (*ClientProfile, error)
	// Upsert creates the profile on first save and updates names, phone and
	// notification preference afterwards.
	Upsert(ctx context.Context, input *ProfileInput) (*ClientProfile, error)
}

// AddressRepository defines persistence for client addresses. Saving a
// default address clears the flag on the client's other addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *Address) error
	GetByID(ctx context.Context, id string) (*Address, error)
	// ListByClient returns addresses not removed, default first then newest.
	ListByClient(ctx context.Context, clientID string) ([]*Address, error)
	Update(ctx context.Context, address *Address) error
}

// ProfileRepository reads and updates client profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *ClientProfile) error
	GetByID(ctx context.Context, id string) (*ClientProfile, error)
	// Update saves names, phone and notification preference.
	Update(ctx context.Context, profile *ClientProfile) error
	SetStripeCustomerID(ctx context.Context, id, customerID string) error
}

// ContractorRepository defines persistence for contractors
type ContractorRepository interface {
	Create(ctx context.Context, contractor *Contractor) error
	GetByID(ctx context.Context, id string) (*Contractor, error)
	GetByUserID(ctx context.Context, userID string) (*Contractor, error)
	// ListActiveOffering returns active contractors linked to serviceID.
	ListActiveOffering(ctx context.Context, serviceID string) ([]*Contractor, error)
	// BusyContractorIDs returns contractors holding a pending or confirmed booking overlapping slot.
	BusyContractorIDs(ctx context.Context, contractorIDs []string, slot Slot, excludeBookingID string) ([]string, error)
	CountByMarket(ctx context.Context, marketID string, activeOnly bool) (int64, error)
}

