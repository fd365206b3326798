package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/mappers"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
	"github.com/tagcash-inc/tagcash/internal/shared/db"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return customer.ErrEmailTaken
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"handle":         model.Handle,
			"password_hash":  model.PasswordHash,
			"active":         model.Active,
			"last_active_at": model.LastActiveAt,
			"updated_at":     model.UpdatedAt,
		}).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return mappers.CustomerToDomain(&model)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return mappers.CustomerToDomain(&model)
}
