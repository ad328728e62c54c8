package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"blogapi/models"

	"gorm.io/gorm"
)

type seedUser struct {
	email       string
	username    string
	displayName string
	role        string
}

var seedUsers = []seedUser{
	{email: "admin@blog.com", username: "admin", displayName: "Admin User", role: models.RoleAdmin},
	{email: "user@blog.com", username: "user", displayName: "Regular User", role: models.RoleUser},
}

// Seed makes sure the bootstrap accounts exist. Accounts already present are left untouched,
// so it is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB, password string) (created int, err error) {
	for _, su := range seedUsers {
		var existing models.User
		err := db.WithContext(ctx).Where("email = ?", su.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("look up seed user %s: %w", su.email, err)
		}

		displayName := su.displayName
		user := &models.User{
			Email:       su.email,
			Username:    su.username,
			DisplayName: &displayName,
			Password:    password,
			Role:        su.role,
		}
		if err := user.HashPassword(); err != nil {
			return created, fmt.Errorf("hash seed password: %w", err)
		}
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			return created, fmt.Errorf("create seed user %s: %w", su.email, err)
		}

		log.Printf("Seeded user %s (%s)", su.email, su.role)
		created++
	}

	return created, nil
}
