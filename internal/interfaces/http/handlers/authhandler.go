package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/tagcash-inc/tagcash/internal/application/auth/usecases"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/utils"
)

type AuthHandler struct {
	loginUC loginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=customer brand"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	AccountID uint      `json:"account_id"`
	Role      string    `json:"role"`
}

// @Summary		Login
// @Description	Authenticate a customer or brand account and issue an access token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest							true	"Login credentials"
// @Success		200			{object}	utils.APIResponse{data=LoginResponse}	"Authenticated"
// @Failure		400			{object}	utils.APIResponse						"Bad request"
// @Failure		401			{object}	utils.APIResponse						"Invalid credentials"
// @Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := authUsecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		AccountID: result.AccountID,
		Role:      result.Role,
	})
}
