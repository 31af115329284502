package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/appointment"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/objectid"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id string,
	customerID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer", selectContact).
		Preload("Provider", selectContact).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) FindConflict(
	ctx context.Context,
	providerID string,
	scheduleDate time.Time,
	excludeID string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("provider_id = ? AND schedule_date = ?", providerID, scheduleDate)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	customerID string,
	params pagination.Params,
) (pagination.Envelope[models.Appointment], error) {

	params = params.OrDefaults()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return pagination.Envelope[models.Appointment]{}, err
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer", selectContact).
		Preload("Provider", selectContact).
		Where("customer_id = ?", customerID).
		Order("schedule_date ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&aps).Error; err != nil {
		return pagination.Envelope[models.Appointment]{}, err
	}

	return pagination.Paginate(aps, count, params.Page, params.Limit), nil
}

func selectContact(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "phone")
}

// --------------------------------------------------
// Mutation
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if ap.ID == "" {
		ap.ID = objectid.New()
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

// Update writes only the appointment row. The preloaded contact
// associations must never be upserted back into users.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

// DeleteByUser removes every appointment the user takes part in. It
// backs the user hard-delete, together with the ON DELETE CASCADE on
// both foreign keys.
func (r *AppointmentGormRepository) DeleteByUser(
	ctx context.Context,
	userID string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "provider_id = ? OR customer_id = ?", userID, userID).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
