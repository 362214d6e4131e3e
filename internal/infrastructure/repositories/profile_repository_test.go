package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dawabag/portalsvc/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBIdentity{}, &DBProfile{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func TestProfileRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	profile := &domain.Profile{
		ID:    "5b2e4f7e-3a10-4c8f-9d0a-111111111111",
		Name:  "Ramesh Kumar",
		Email: "ramesh@dawabag.com",
		Phone: "9876543210",
		Role:  "user",
	}

	if err := repo.Create(context.Background(), profile); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if profile.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set after create")
	}

	var stored DBProfile
	if err := db.Where("id = ?", profile.ID).First(&stored).Error; err != nil {
		t.Fatalf("failed to read stored profile: %v", err)
	}
	if stored.Email != "ramesh@dawabag.com" {
		t.Errorf("stored email = %q, want %q", stored.Email, "ramesh@dawabag.com")
	}
	if stored.Role != "user" {
		t.Errorf("stored role = %q, want %q", stored.Role, "user")
	}
}

func TestProfileRepositoryImpl_FindByID(t *testing.T) {
	tests := []struct {
		name          string
		setupData     func(db *gorm.DB)
		id            string
		expectedError error
		validate      func(t *testing.T, profile *domain.Profile)
	}{
		{
			name: "successful find",
			setupData: func(db *gorm.DB) {
				db.Create(&DBProfile{
					ID:        "abc-123",
					Name:      "Priya Sharma",
					Email:     "priya@dawabag.com",
					Phone:     "9000000001",
					Role:      "admin",
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				})
			},
			id: "abc-123",
			validate: func(t *testing.T, profile *domain.Profile) {
				if profile.Name != "Priya Sharma" {
					t.Errorf("name = %q, want %q", profile.Name, "Priya Sharma")
				}
				if profile.Role != "admin" {
					t.Errorf("role = %q, want %q", profile.Role, "admin")
				}
			},
		},
		{
			name:          "profile not found",
			setupData:     func(db *gorm.DB) {},
			id:            "missing",
			expectedError: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			tt.setupData(db)
			repo := NewProfileRepository(db)

			profile, err := repo.FindByID(context.Background(), tt.id)
			if err != tt.expectedError {
				t.Fatalf("FindByID() error = %v, want %v", err, tt.expectedError)
			}
			if tt.validate != nil {
				tt.validate(t, profile)
			}
		})
	}
}

func TestProfileRepositoryImpl_CountByEmail(t *testing.T) {
	tests := []struct {
		name      string
		setupData func(db *gorm.DB)
		email     string
		expected  int64
	}{
		{
			name:      "no matching rows",
			setupData: func(db *gorm.DB) {},
			email:     "ghost@dawabag.com",
			expected:  0,
		},
		{
			name: "one matching row",
			setupData: func(db *gorm.DB) {
				db.Create(&DBProfile{ID: "p1", Email: "taken@dawabag.com", Role: "user"})
			},
			email:    "taken@dawabag.com",
			expected: 1,
		},
		{
			name: "exact match only",
			setupData: func(db *gorm.DB) {
				db.Create(&DBProfile{ID: "p2", Email: "someone@dawabag.com", Role: "user"})
			},
			email:    "someone@dawabag.co",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			tt.setupData(db)
			repo := NewProfileRepository(db)

			count, err := repo.CountByEmail(context.Background(), tt.email)
			if err != nil {
				t.Fatalf("CountByEmail() error = %v", err)
			}
			if count != tt.expected {
				t.Errorf("CountByEmail() = %d, want %d", count, tt.expected)
			}
		})
	}
}
