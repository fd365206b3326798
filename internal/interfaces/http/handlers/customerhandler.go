package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	customerUsecases "github.com/tagcash-inc/tagcash/internal/application/customer/usecases"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/utils"
)

type CustomerHandler struct {
	registerCustomerUC registerCustomerUseCase
	logger             logger.Interface
}

func NewCustomerHandler(registerCustomerUC registerCustomerUseCase, logger logger.Interface) *CustomerHandler {
	return &CustomerHandler{
		registerCustomerUC: registerCustomerUC,
		logger:             logger,
	}
}

type CustomerResponse struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toCustomerResponse(cu *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        cu.ID(),
		SID:       cu.SID(),
		Handle:    cu.Handle(),
		Email:     cu.Email(),
		Active:    cu.IsActive(),
		CreatedAt: cu.CreatedAt(),
	}
}

type RegisterCustomerRequest struct {
	Handle   string `json:"handle" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// @Summary		Register customer
// @Description	Register an influencer account
// @Tags			customers
// @Accept			json
// @Produce		json
// @Param			customer	body		RegisterCustomerRequest					true	"Customer data"
// @Success		201			{object}	utils.APIResponse{data=CustomerResponse}	"Customer registered"
// @Failure		400			{object}	utils.APIResponse							"Bad request"
// @Failure		409			{object}	utils.APIResponse							"Email already registered"
// @Router			/customers/register [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := customerUsecases.RegisterCustomerCommand{
		Handle:   req.Handle,
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.registerCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to register customer", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCustomerResponse(result.Customer), "customer registered successfully")
}
