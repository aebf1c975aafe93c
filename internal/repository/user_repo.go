package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gamecatalog/backend/internal/models"
)

// CreateUser inserts u and populates its ID and CreatedAt.
func CreateUser(ctx context.Context, db *gorm.DB, u *models.User) error {
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindUserByEmail looks up a user by their normalized email.
func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).Where("email = ?", email).Take(&u).Error; err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// FindUserByID looks up a user by primary key.
func FindUserByID(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&u).Error; err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}
