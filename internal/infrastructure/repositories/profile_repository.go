package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dawabag/portalsvc/domain"
)

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBProfile represents the database model for Profile (with GORM tags).
// The id is the auth identity's id; the row never carries credentials.
type DBProfile struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255"`
	Email     string    `gorm:"index;size:255"`
	Phone     string    `gorm:"size:32"`
	Role      string    `gorm:"index;size:64"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBProfile) TableName() string {
	return "master_users"
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *domain.Profile) error {
	dbProfile := r.domainToDB(profile)
	if err := r.db.WithContext(ctx).Create(dbProfile).Error; err != nil {
		return err
	}
	profile.CreatedAt = dbProfile.CreatedAt
	profile.UpdatedAt = dbProfile.UpdatedAt
	return nil
}

// FindByID implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var dbProfile DBProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProfile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProfile), nil
}

// CountByEmail implements domain.ProfileRepository. Exact match, zero or
// more rows; used by the duplicate-email pre-check.
func (r *ProfileRepositoryImpl) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBProfile{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// domainToDB converts a domain profile to a database profile
func (r *ProfileRepositoryImpl) domainToDB(profile *domain.Profile) *DBProfile {
	return &DBProfile{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
		Phone: profile.Phone,
		Role:  profile.Role,
	}
}

// dbToDomain converts a database profile to a domain profile
func (r *ProfileRepositoryImpl) dbToDomain(dbProfile *DBProfile) *domain.Profile {
	return &domain.Profile{
		ID:        dbProfile.ID,
		Name:      dbProfile.Name,
		Email:     dbProfile.Email,
		Phone:     dbProfile.Phone,
		Role:      dbProfile.Role,
		CreatedAt: dbProfile.CreatedAt,
		UpdatedAt: dbProfile.UpdatedAt,
	}
}
