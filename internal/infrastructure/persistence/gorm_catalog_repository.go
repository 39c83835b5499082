package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormServiceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormServiceRepository creates a new GORM-based ServiceRepository implementation
func NewGormServiceRepository(db *gorm.DB, logger logger.Logger) (catalog.ServiceRepository, error) {
	return &gormServiceRepository{db: db, logger: logger}, nil
}

func (r *gormServiceRepository) Create(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceModel{}
	model.FromDomain(service)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	r.logger.Info("Created service with id ", service.ID)
	return nil
}

func (r *gormServiceRepository) GetByID(ctx context.Context, id string) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceRepository) CountAvailableInMarket(ctx context.Context, marketID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ServiceMarketAvailabilityModel{}).
		Joins("JOIN services ON services.id = service_market_availability.service_id").
		Where("service_market_availability.market_id = ?", marketID).
		Where("service_market_availability.is_available = ? AND services.is_active = ?", true, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count services in market: %w", err)
	}
	return count, nil
}

func (r *gormServiceRepository) SetMarketAvailability(ctx context.Context, serviceID, marketID string, available bool) error {
	row := &models.ServiceMarketAvailabilityModel{ServiceID: serviceID, MarketID: marketID, IsAvailable: available}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_id"}, {Name: "market_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to set service availability: %w", err)
	}

	r.logger.Info("Set availability of service ", serviceID, " in market ", marketID)
	return nil
}

type gormAddressRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAddressRepository creates a new GORM-based AddressRepository implementation
func NewGormAddressRepository(db *gorm.DB, logger logger.Logger) (catalog.AddressRepository, error) {
	return &gormAddressRepository{db: db, logger: logger}, nil
}

func (r *gormAddressRepository) Create(ctx context.Context, address *catalog.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AddressModel{}
	model.FromDomain(address)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearOtherDefaults(tx, address); err != nil {
			return err
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created address with id ", address.ID)
	return nil
}

func (r *gormAddressRepository) ListByClient(ctx context.Context, clientID string) ([]*catalog.Address, error) {
	var modelList []*models.AddressModel
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND deleted_at IS NULL", clientID).
		Order("is_default desc, created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}

	addresses := make([]*catalog.Address, 0, len(modelList))
	for _, m := range modelList {
		addresses = append(addresses, m.ToDomain())
	}
	return addresses, nil
}

func (r *gormAddressRepository) Update(ctx context.Context, address *catalog.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AddressModel{}
	model.FromDomain(address)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearOtherDefaults(tx, address); err != nil {
			return err
		}
		res := tx.Model(&models.AddressModel{}).Where("id = ?", address.ID).Select("*").Updates(model)
		if res.Error != nil {
			return fmt.Errorf("failed to update address: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return catalog.ErrAddressNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated address with id ", address.ID)
	return nil
}

// clearOtherDefaults keeps a single default address per client
func clearOtherDefaults(tx *gorm.DB, address *catalog.Address) error {
	if !address.IsDefault {
		return nil
	}
	err := tx.Model(&models.AddressModel{}).
		Where("client_id = ? AND id <> ? AND is_default = ?", address.ClientID, address.ID, true).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default address: %w", err)
	}
	return nil
}

func (r *gormAddressRepository) GetByID(ctx context.Context, id string) (*catalog.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to fetch address: %w", err)
	}
	return model.ToDomain(), nil
}

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (catalog.ProfileRepository, error) {
	return &gormProfileRepository{db: db, logger: logger}, nil
}

func (r *gormProfileRepository) Create(ctx context.Context, profile *catalog.ClientProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	r.logger.Info("Created profile with id ", profile.ID)
	return nil
}

func (r *gormProfileRepository) GetByID(ctx context.Context, id string) (*catalog.ClientProfile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) Update(ctx context.Context, profile *catalog.ClientProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	res := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"first_name":        profile.FirstName,
			"last_name":         profile.LastName,
			"phone":             profile.Phone,
			"sms_notifications": profile.SMSNotifications,
			"updated_at":        profile.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return catalog.ErrProfileNotFound
	}

	r.logger.Info("Updated profile with id ", profile.ID)
	return nil
}

func (r *gormProfileRepository) SetStripeCustomerID(ctx context.Context, id, customerID string) error {
	res := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("id = ?", id).
		Update("stripe_customer_id", customerID)
	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return catalog.ErrProfileNotFound
	}

	r.logger.Info("Linked payment customer to profile ", id)
	return nil
}

type gormContractorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContractorRepository creates a new GORM-based ContractorRepository implementation
func NewGormContractorRepository(db *gorm.DB, logger logger.Logger) (catalog.ContractorRepository, error) {
	return &gormContractorRepository{db: db, logger: logger}, nil
}

func (r *gormContractorRepository) Create(ctx context.Context, contractor *catalog.Contractor) error {
	if err := contractor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContractorModel{}
	model.FromDomain(contractor)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contractor: %w", err)
	}

	r.logger.Info("Created contractor with id ", contractor.ID)
	return nil
}

func (r *gormContractorRepository) GetByID(ctx context.Context, id string) (*catalog.Contractor, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormContractorRepository) GetByUserID(ctx context.Context, userID string) (*catalog.Contractor, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *gormContractorRepository) first(ctx context.Context, cond string, arg string) (*catalog.Contractor, error) {
	var model models.ContractorModel
	if err := r.db.WithContext(ctx).Preload("Services").Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to fetch contractor: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContractorRepository) ListActiveOffering(ctx context.Context, serviceID string) ([]*catalog.Contractor, error) {
	var modelList []*models.ContractorModel
	err := r.db.WithContext(ctx).
		Preload("Services").
		Joins("JOIN contractor_services ON contractor_services.contractor_id = contractors.id").
		Where("contractor_services.service_id = ? AND contractors.is_active = ?", serviceID, true).
		Order("contractors.rating desc, contractors.total_bookings desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contractors: %w", err)
	}

	domainList := make([]*catalog.Contractor, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// BusyContractorIDs applies the half-open overlap test on pending and confirmed bookings
func (r *gormContractorRepository) BusyContractorIDs(ctx context.Context, contractorIDs []string, slot catalog.Slot, excludeBookingID string) ([]string, error) {
	if len(contractorIDs) == 0 {
		return nil, nil
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.BookingModel{}).
		Distinct("contractor_id").
		Where("contractor_id IN ?", contractorIDs).
		Where("status IN ?", []string{string(bookings.StatusPending), string(bookings.StatusConfirmed)}).
		Where("scheduled_at < ? AND ends_at > ?", slot.End.UTC(), slot.Start.UTC())
	if excludeBookingID != "" {
		dbQuery = dbQuery.Where("id <> ?", excludeBookingID)
	}

	var busy []string
	if err := dbQuery.Pluck("contractor_id", &busy).Error; err != nil {
		return nil, fmt.Errorf("failed to check contractor calendars: %w", err)
	}
	return busy, nil
}

func (r *gormContractorRepository) CountByMarket(ctx context.Context, marketID string, activeOnly bool) (int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.ContractorModel{}).Where("market_id = ?", marketID)
	if activeOnly {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contractors: %w", err)
	}
	return count, nil
}
