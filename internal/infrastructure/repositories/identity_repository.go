package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dawabag/portalsvc/domain"
)

// IdentityRepositoryImpl implements domain.IdentityRepository using GORM
type IdentityRepositoryImpl struct {
	db *gorm.DB
}

// DBIdentity represents the database model for Identity (with GORM tags)
type DBIdentity struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBIdentity) TableName() string {
	return "auth_identities"
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) domain.IdentityRepository {
	return &IdentityRepositoryImpl{db: db}
}

// Create implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) Create(ctx context.Context, identity *domain.Identity) error {
	dbIdentity := &DBIdentity{
		ID:           identity.ID,
		Email:        identity.Email,
		PasswordHash: identity.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(dbIdentity).Error; err != nil {
		return err
	}
	identity.CreatedAt = dbIdentity.CreatedAt
	identity.UpdatedAt = dbIdentity.UpdatedAt
	return nil
}

// FindByEmail implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var dbIdentity DBIdentity
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbIdentity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return &domain.Identity{
		ID:           dbIdentity.ID,
		Email:        dbIdentity.Email,
		PasswordHash: dbIdentity.PasswordHash,
		CreatedAt:    dbIdentity.CreatedAt,
		UpdatedAt:    dbIdentity.UpdatedAt,
	}, nil
}

// Delete implements domain.IdentityRepository. Used as the compensating
// action when a profile insert fails after sign-up.
func (r *IdentityRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBIdentity{}).Error
}
