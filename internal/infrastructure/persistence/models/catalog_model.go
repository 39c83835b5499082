package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
)

// ServiceModel is the GORM database model for services
type ServiceModel struct {
	ID                  string  `gorm:"primaryKey;type:uuid"`
	Name                string  `gorm:"not null;type:varchar(200)"`
	CategoryID          *string `gorm:"index;type:uuid"`
	BasePrice           int64   `gorm:"not null"`
	BaseDurationMinutes int     `gorm:"not null"`
	IsActive            bool    `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceModel) ToDomain() *catalog.Service {
	return &catalog.Service{
		ID:                  m.ID,
		Name:                m.Name,
		CategoryID:          m.CategoryID,
		BasePrice:           m.BasePrice,
		BaseDurationMinutes: m.BaseDurationMinutes,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceModel) FromDomain(s *catalog.Service) {
	m.ID = s.ID
	m.Name = s.Name
	m.CategoryID = s.CategoryID
	m.BasePrice = s.BasePrice
	m.BaseDurationMinutes = s.BaseDurationMinutes
	m.IsActive = s.IsActive
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ServiceMarketAvailabilityModel links a service to the markets it is sold in
type ServiceMarketAvailabilityModel struct {
	ServiceID   string `gorm:"primaryKey;type:uuid"`
	MarketID    string `gorm:"primaryKey;type:uuid"`
	IsAvailable bool   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ServiceMarketAvailabilityModel) TableName() string {
	return "service_market_availability"
}

// AddressModel is the GORM database model for client addresses
type AddressModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	ClientID    string  `gorm:"not null;index;type:uuid"`
	Label       *string `gorm:"type:varchar(100)"`
	Street      string  `gorm:"not null;type:varchar(255)"`
	City        string  `gorm:"not null;type:varchar(100)"`
	PostalCode  string  `gorm:"not null;type:varchar(20)"`
	Country     string  `gorm:"not null;type:varchar(100)"`
	CountryCode string  `gorm:"type:varchar(2)"`
	MarketID    *string `gorm:"index;type:uuid"`
	Latitude    *float64
	Longitude   *float64
	IsDefault   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AddressModel) TableName() string {
	return "client_addresses"
}

// ToDomain converts GORM model to domain entity
func (m *AddressModel) ToDomain() *catalog.Address {
	return &catalog.Address{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Label:       m.Label,
		Street:      m.Street,
		City:        m.City,
		PostalCode:  m.PostalCode,
		Country:     m.Country,
		CountryCode: m.CountryCode,
		MarketID:    m.MarketID,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AddressModel) FromDomain(a *catalog.Address) {
	m.ID = a.ID
	m.ClientID = a.ClientID
	m.Label = a.Label
	m.Street = a.Street
	m.City = a.City
	m.PostalCode = a.PostalCode
	m.Country = a.Country
	m.CountryCode = a.CountryCode
	m.MarketID = a.MarketID
	m.Latitude = a.Latitude
	m.Longitude = a.Longitude
	m.IsDefault = a.IsDefault
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
	m.DeletedAt = a.DeletedAt
}

// ProfileModel is the GORM database model for user profiles
type ProfileModel struct {
	ID               string  `gorm:"primaryKey;type:uuid"`
	Email            string  `gorm:"not null;uniqueIndex;type:varchar(255)"`
	FirstName        string  `gorm:"type:varchar(100)"`
	LastName         string  `gorm:"type:varchar(100)"`
	Phone            *string `gorm:"type:varchar(30)"`
	StripeCustomerID *string `gorm:"type:varchar(255)"`
	SMSNotifications bool    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *catalog.ClientProfile {
	return &catalog.ClientProfile{
		ID:               m.ID,
		Email:            m.Email,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Phone:            m.Phone,
		StripeCustomerID: m.StripeCustomerID,
		SMSNotifications: m.SMSNotifications,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *catalog.ClientProfile) {
	m.ID = p.ID
	m.Email = p.Email
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Phone = p.Phone
	m.StripeCustomerID = p.StripeCustomerID
	m.SMSNotifications = p.SMSNotifications
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// ContractorModel is the GORM database model for contractors
type ContractorModel struct {
	ID                string                   `gorm:"primaryKey;type:uuid"`
	UserID            string                   `gorm:"not null;uniqueIndex;type:uuid"`
	MarketID          *string                  `gorm:"index;type:uuid"`
	BusinessName      string                   `gorm:"not null;type:varchar(200)"`
	Slug              string                   `gorm:"not null;uniqueIndex;type:varchar(200)"`
	Bio               *string                  `gorm:"type:text"`
	ProfessionalTitle *string                  `gorm:"type:varchar(200)"`
	ProfilePictureURL *string                  `gorm:"type:varchar(512)"`
	Rating            float64                  `gorm:"not null;default:0"`
	TotalBookings     int                      `gorm:"not null;default:0"`
	IsActive          bool                     `gorm:"not null;index"`
	Services          []ContractorServiceModel `gorm:"foreignKey:ContractorID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (ContractorModel) TableName() string {
	return "contractors"
}

// ToDomain converts GORM model to domain entity
func (m *ContractorModel) ToDomain() *catalog.Contractor {
	serviceIDs := make([]string, 0, len(m.Services))
	for _, s := range m.Services {
		serviceIDs = append(serviceIDs, s.ServiceID)
	}
	return &catalog.Contractor{
		ID:                m.ID,
		UserID:            m.UserID,
		MarketID:          m.MarketID,
		BusinessName:      m.BusinessName,
		Slug:              m.Slug,
		Bio:               m.Bio,
		ProfessionalTitle: m.ProfessionalTitle,
		ProfilePictureURL: m.ProfilePictureURL,
		Rating:            m.Rating,
		TotalBookings:     m.TotalBookings,
		IsActive:          m.IsActive,
		ServiceIDs:        serviceIDs,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContractorModel) FromDomain(c *catalog.Contractor) {
	m.ID = c.ID
	m.UserID = c.UserID
	m.MarketID = c.MarketID
	m.BusinessName = c.BusinessName
	m.Slug = c.Slug
	m.Bio = c.Bio
	m.ProfessionalTitle = c.ProfessionalTitle
	m.ProfilePictureURL = c.ProfilePictureURL
	m.Rating = c.Rating
	m.TotalBookings = c.TotalBookings
	m.IsActive = c.IsActive
	m.Services = make([]ContractorServiceModel, 0, len(c.ServiceIDs))
	for _, id := range c.ServiceIDs {
		m.Services = append(m.Services, ContractorServiceModel{ContractorID: c.ID, ServiceID: id})
	}
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ContractorServiceModel links a contractor to a service they perform
type ContractorServiceModel struct {
	ContractorID string `gorm:"primaryKey;type:uuid"`
	ServiceID    string `gorm:"primaryKey;index;type:uuid"`
}

// TableName specifies the table name for GORM
func (ContractorServiceModel) TableName() string {
	return "contractor_services"
}
