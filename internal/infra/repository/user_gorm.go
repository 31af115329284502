package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/VitaplanServices/appointment-scheduler/internal/domain/user"
	"github.com/VitaplanServices/appointment-scheduler/internal/models"
	"github.com/VitaplanServices/appointment-scheduler/internal/objectid"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *UserGormRepository) List(
	ctx context.Context,
	search domain.SearchParams,
	params pagination.Params,
) (pagination.Envelope[models.User], error) {

	params = params.OrDefaults()

	active := search.Active
	if active == "" {
		active = "true"
	}

	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("active = ?", active == "true")

		if search.Name != "" {
			q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search.Name)+"%")
		}
		if search.Email != "" {
			q = q.Where("email = ?", strings.ToLower(search.Email))
		}
		if search.CRN != "" {
			q = q.Where("crn = ?", search.CRN)
		}
		return q
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return pagination.Envelope[models.User]{}, err
	}

	// password hash stays out of list results
	var users []models.User
	if err := filtered().
		Omit("password_hash").
		Order("name ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&users).Error; err != nil {
		return pagination.Envelope[models.User]{}, err
	}

	return pagination.Paginate(users, count, params.Page, params.Limit), nil
}

// --------------------------------------------------
// Mutation
// --------------------------------------------------

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	if u.ID == "" {
		u.ID = objectid.New()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.User{}, "id = ?", id).Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
