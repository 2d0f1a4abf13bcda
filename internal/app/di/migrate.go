package di

import (
	"fmt"

	"gorm.io/gorm"

	articleadapters "blog_backend/internal/feature/article/adapters"
	authentity "blog_backend/internal/feature/auth/domain/entity"
	profileentity "blog_backend/internal/feature/profile/domain/entity"
)

// Migrate creates or updates every table the application owns.
// users is migrated first because the article models read it.
func Migrate(db *gorm.DB) error {
	models := append([]any{&authentity.User{}, &profileentity.Follow{}}, articleadapters.Models()...)
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
