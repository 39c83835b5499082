package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBookingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookingRepository creates a new GORM-based BookingRepository implementation
func NewGormBookingRepository(db *gorm.DB, logger logger.Logger) (bookings.BookingRepository, error) {
	return &gormBookingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *bookings.Booking) error {
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookingModel{}
	model.FromDomain(booking)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	r.logger.Info("Created booking with id ", booking.ID)
	return nil
}

func (r *gormBookingRepository) GetByID(ctx context.Context, id string) (*bookings.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookings.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRepository) List(ctx context.Context, query *bookings.Query) ([]*bookings.Booking, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.BookingModel{})

	if query.ClientID != nil {
		dbQuery = dbQuery.Where("client_id = ?", *query.ClientID)
	}
	if query.ContractorID != nil {
		dbQuery = dbQuery.Where("contractor_id = ?", *query.ContractorID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	if query.From != nil {
		dbQuery = dbQuery.Where("scheduled_at >= ?", query.From.UTC())
	}
	if query.To != nil {
		dbQuery = dbQuery.Where("scheduled_at < ?", query.To.UTC())
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var modelList []*models.BookingModel
	err := dbQuery.
		Order("scheduled_at desc").
		Limit(query.Limit).
		Offset(pagination.Offset(query.Page, query.Limit)).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	domainList := make([]*bookings.Booking, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormBookingRepository) Update(ctx context.Context, booking *bookings.Booking) error {
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	booking.UpdatedAt = time.Now().UTC()
	model := &models.BookingModel{}
	model.FromDomain(booking)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	r.logger.Info("Updated booking with id ", booking.ID, " to status ", booking.Status)
	return nil
}

func (r *gormBookingRepository) CountActiveForClient(ctx context.Context, clientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BookingModel{}).
		Where("client_id = ? AND status <> ?", clientID, string(bookings.StatusCancelled)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

type gormBookingRequestRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookingRequestRepository creates a new GORM-based BookingRequestRepository implementation
func NewGormBookingRequestRepository(db *gorm.DB, logger logger.Logger) (bookings.BookingRequestRepository, error) {
	return &gormBookingRequestRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookingRequestRepository) Create(ctx context.Context, request *bookings.BookingRequest) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookingRequestModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create booking request: %w", err)
	}

	r.logger.Info("Created booking request with id ", request.ID)
	return nil
}

func (r *gormBookingRequestRepository) GetByID(ctx context.Context, id string) (*bookings.BookingRequest, error) {
	var model models.BookingRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookings.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking request: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRequestRepository) GetPendingByBookingID(ctx context.Context, bookingID string) (*bookings.BookingRequest, error) {
	var model models.BookingRequestModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND status = ?", bookingID, string(bookings.RequestPending)).
		Order("created_at desc").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookings.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking request: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRequestRepository) ListByContractor(ctx context.Context, contractorID string, status bookings.RequestStatus) ([]*bookings.BookingRequest, error) {
	dbQuery := r.db.WithContext(ctx).Where("contractor_id = ?", contractorID)
	if status != "" {
		dbQuery = dbQuery.Where("status = ?", string(status))
	}

	var modelList []*models.BookingRequestModel
	if err := dbQuery.Order("created_at desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch booking requests: %w", err)
	}

	domainList := make([]*bookings.BookingRequest, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBookingRequestRepository) ListExpired(ctx context.Context, now time.Time) ([]*bookings.BookingRequest, error) {
	var modelList []*models.BookingRequestModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", string(bookings.RequestPending), now.UTC()).
		Order("expires_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expired booking requests: %w", err)
	}

	domainList := make([]*bookings.BookingRequest, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBookingRequestRepository) Update(ctx context.Context, request *bookings.BookingRequest) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	request.UpdatedAt = time.Now().UTC()
	model := &models.BookingRequestModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update booking request: %w", err)
	}

	r.logger.Info("Updated booking request with id ", request.ID, " to status ", request.Status)
	return nil
}

func (r *gormBookingRequestRepository) UpdateWithBooking(ctx context.Context, request *bookings.BookingRequest, booking *bookings.Booking) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	now := time.Now().UTC()
	request.UpdatedAt = now
	booking.UpdatedAt = now

	requestModel := &models.BookingRequestModel{}
	requestModel.FromDomain(request)
	bookingModel := &models.BookingModel{}
	bookingModel.FromDomain(booking)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(requestModel).Error; err != nil {
			return fmt.Errorf("failed to update booking request: %w", err)
		}
		if err := tx.Save(bookingModel).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated booking request with id ", request.ID, " to status ", request.Status, " and booking to ", booking.Status)
	return nil
}
