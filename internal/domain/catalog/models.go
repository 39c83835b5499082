package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

var (
	// ErrServiceNotFound is returned when no active service matches
	ErrServiceNotFound = errors.New("service not found")
	// ErrAddressNotFound is returned when no address matches
	ErrAddressNotFound = errors.New("address not found")
	// ErrContractorNotFound is returned when no contractor matches
	ErrContractorNotFound = errors.New("contractor not found")
	// ErrProfileNotFound is returned when no client profile matches
	ErrProfileNotFound = errors.New("profile not found")
	// ErrContractorUnavailable is returned when a contractor cannot take a slot
	ErrContractorUnavailable = errors.New("contractor is not available for this slot")
)

// Service is a bookable offering
type Service struct {
	ID                  string  `validate:"required,uuid4"`
	Name                string  `validate:"required,min=1,max=200"`
	CategoryID          *string `validate:"omitempty,uuid4"`
	BasePrice           int64   `validate:"min=0"`
	BaseDurationMinutes int     `validate:"required,min=5,max=720"`
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate for validating Service struct
func (s *Service) Validate() error {
	return validators.ValidateStruct(s)
}

// Duration returns the base duration of the service
func (s *Service) Duration() time.Duration {
	return time.Duration(s.BaseDurationMinutes) * time.Minute
}

// DefaultCountry is used when a client saves an address without a country
const DefaultCountry = "FR"

// Address is a place where a client receives a service
type Address struct {
	ID          string   `validate:"required,uuid4"`
	ClientID    string   `validate:"required,uuid4"`
	Label       *string  `validate:"omitempty,max=100"`
	Street      string   `validate:"required,max=255"`
	City        string   `validate:"required,max=100"`
	PostalCode  string   `validate:"required,max=20"`
	Country     string   `validate:"required,max=100"`
	CountryCode string   `validate:"omitempty,len=2"`
	MarketID    *string  `validate:"omitempty,uuid4"`
	Latitude    *float64 `validate:"omitempty,latitude"`
	Longitude   *float64 `validate:"omitempty,longitude"`
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// DeletedAt is set once the client removes the address
	DeletedAt *time.Time
}

// Validate for validating Address struct
func (a *Address) Validate() error {
	return validators.ValidateStruct(a)
}

// Removed reports whether the client deleted the address
func (a *Address) Removed() bool {
	return a.DeletedAt != nil
}

// AddressInput is what a client submits when saving an address
type AddressInput struct {
	Label      *string  `validate:"omitempty,max=100"`
	Street     string   `validate:"required,max=255"`
	City       string   `validate:"required,max=100"`
	PostalCode string   `validate:"required,max=20"`
	Country    string   `validate:"omitempty,max=100"`
	Latitude   *float64 `validate:"omitempty,latitude"`
	Longitude  *float64 `validate:"omitempty,longitude"`
	IsDefault  bool
}

// Validate for validating AddressInput struct
func (in *AddressInput) Validate() error {
	return validators.ValidateStruct(in)
}

// Apply copies the input onto a, defaulting the country
func (in *AddressInput) Apply(a *Address) {
	a.Label = in.Label
	a.Street = strings.TrimSpace(in.Street)
	a.City = strings.TrimSpace(in.City)
	a.PostalCode = strings.TrimSpace(in.PostalCode)
	a.Country = strings.TrimSpace(in.Country)
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	a.Latitude = in.Latitude
	a.Longitude = in.Longitude
	a.IsDefault = in.IsDefault
}

// ClientProfile is the profile of a platform user
type ClientProfile struct {
	ID               string  `validate:"required,uuid4"`
	Email            string  `validate:"required,email"`
	FirstName        string  `validate:"max=100"`
	LastName         string  `validate:"max=100"`
	Phone            *string `validate:"omitempty,max=30"`
	StripeCustomerID *string
	SMSNotifications bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate for validating ClientProfile struct
func (p *ClientProfile) Validate() error {
	return validators.ValidateStruct(p)
}

// ProfileInput is what a user submits to create or update their profile
type ProfileInput struct {
	UserID           string  `validate:"required,uuid4"`
	Email            string  `validate:"omitempty,email"`
	FirstName        string  `validate:"required,min=1,max=100"`
	LastName         string  `validate:"required,min=1,max=100"`
	Phone            *string `validate:"omitempty,max=30"`
	SMSNotifications bool
}

// Validate for validating ProfileInput struct
func (in *ProfileInput) Validate() error {
	return validators.ValidateStruct(in)
}

// FullName joins first and last name
func (p *ClientProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Contractor is a professional who performs services
type Contractor struct {
	ID                string  `validate:"required,uuid4"`
	UserID            string  `validate:"required,uuid4"`
	MarketID          *string `validate:"omitempty,uuid4"`
	BusinessName      string  `validate:"required,min=1,max=200"`
	Slug              string  `validate:"required,min=1,max=200"`
	Bio               *string `validate:"omitempty,max=2000"`
	ProfessionalTitle *string `validate:"omitempty,max=200"`
	ProfilePictureURL *string `validate:"omitempty,url"`
	Rating            float64 `validate:"min=0,max=5"`
	TotalBookings     int     `validate:"min=0"`
	IsActive          bool
	ServiceIDs        []string `validate:"omitempty,dive,uuid4"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate for validating Contractor struct
func (c *Contractor) Validate() error {
	return validators.ValidateStruct(c)
}

// Offers reports whether the contractor performs serviceID
func (c *Contractor) Offers(serviceID string) bool {
	for _, id := range c.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
