package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema from the model structs.
// Suitable for development; production environments use versioned scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.auto"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.BrandModel{},
		&models.BillModel{},
		&models.BalanceTransactionModel{},
	}
}
