package mappers

import (
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
)

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID(),
		SID:          c.SID(),
		Handle:       c.Handle(),
		Email:        c.Email(),
		PasswordHash: c.PasswordHash(),
		Active:       c.IsActive(),
		LastActiveAt: c.LastActiveAt(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func CustomerToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.SID,
		model.Handle,
		model.Email,
		model.PasswordHash,
		model.Active,
		model.LastActiveAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
