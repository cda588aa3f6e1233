package migration

import (
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model managed by AutoMigrate.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ServiceRequestModel{},
		&models.CommentModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema straight from the model structs.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
