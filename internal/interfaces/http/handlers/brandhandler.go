package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	brandUsecases "github.com/tagcash-inc/tagcash/internal/application/brand/usecases"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/utils"
)

type BrandHandler struct {
	registerBrandUC      registerBrandUseCase
	topUpUC              topUpUseCase
	updateRefundPolicyUC updateRefundPolicyUseCase
	getBalanceUC         getBalanceUseCase
	logger               logger.Interface
}

func NewBrandHandler(
	registerBrandUC registerBrandUseCase,
	topUpUC topUpUseCase,
	updateRefundPolicyUC updateRefundPolicyUseCase,
	getBalanceUC getBalanceUseCase,
	logger logger.Interface,
) *BrandHandler {
	return &BrandHandler{
		registerBrandUC:      registerBrandUC,
		topUpUC:              topUpUC,
		updateRefundPolicyUC: updateRefundPolicyUC,
		getBalanceUC:         getBalanceUC,
		logger:               logger,
	}
}

type BrandResponse struct {
	ID           uint   `json:"id"`
	SID          string `json:"sid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BalanceCents int64  `json:"balance_cents"`
	Currency     string `json:"currency"`

	RefundDays            int   `json:"refund_days"`
	RefundPercentage      int   `json:"refund_percentage"`
	UpToRefundAmountCents int64 `json:"up_to_refund_amount_cents"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toBrandResponse(b *brand.Brand) BrandResponse {
	policy := b.RefundPolicy()
	return BrandResponse{
		ID:                    b.ID(),
		SID:                   b.SID(),
		Name:                  b.Name(),
		Email:                 b.Email(),
		BalanceCents:          b.BalanceCents(),
		Currency:              b.Currency(),
		RefundDays:            policy.RefundDays(),
		RefundPercentage:      policy.RefundPercentage(),
		UpToRefundAmountCents: policy.UpToRefundAmountCents(),
		Active:                b.IsActive(),
		CreatedAt:             b.CreatedAt(),
	}
}

type RegisterBrandRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	RefundDays            int   `json:"refund_days" validate:"min=0"`
	RefundPercentage      int   `json:"refund_percentage" validate:"min=0,max=100"`
	UpToRefundAmountCents int64 `json:"up_to_refund_amount_cents" validate:"min=0"`
}

// @Summary		Register brand
// @Description	Register a brand account with its refund policy
// @Tags			brands
// @Accept			json
// @Produce		json
// @Param			brand	body		RegisterBrandRequest					true	"Brand data"
// @Success		201		{object}	utils.APIResponse{data=BrandResponse}	"Brand registered"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Failure		409		{object}	utils.APIResponse						"Email already registered"
// @Router			/brands/register [post]
func (h *BrandHandler) Register(c *gin.Context) {
	var req RegisterBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := brandUsecases.RegisterBrandCommand{
		Name:                  req.Name,
		Email:                 req.Email,
		Password:              req.Password,
		RefundDays:            req.RefundDays,
		RefundPercentage:      req.RefundPercentage,
		UpToRefundAmountCents: req.UpToRefundAmountCents,
	}

	result, err := h.registerBrandUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to register brand", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBrandResponse(result.Brand), "brand registered successfully")
}

type TopUpRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Reference   string `json:"reference"`
}

type TopUpResponse struct {
	Brand        BrandResponse `json:"brand"`
	SettlementID string        `json:"settlement_id"`
}

// @Summary		Top up balance
// @Description	Credit the authenticated brand's prepaid balance
// @Tags			brands
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			topup	body		TopUpRequest							true	"Top-up data"
// @Success		200		{object}	utils.APIResponse{data=TopUpResponse}	"Balance credited"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Router			/brands/balance/topup [post]
func (h *BrandHandler) TopUp(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := brandUsecases.TopUpCommand{
		BrandID:     accountID,
		AmountCents: req.AmountCents,
		Reference:   req.Reference,
	}

	result, err := h.topUpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to top up balance", "error", err, "brand_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "balance credited successfully", TopUpResponse{
		Brand:        toBrandResponse(result.Brand),
		SettlementID: result.SettlementID,
	})
}

type UpdateRefundPolicyRequest struct {
	RefundDays            int   `json:"refund_days" validate:"min=0"`
	RefundPercentage      int   `json:"refund_percentage" validate:"min=0,max=100"`
	UpToRefundAmountCents int64 `json:"up_to_refund_amount_cents" validate:"min=0"`
}

// @Summary		Update refund policy
// @Description	Replace the authenticated brand's refund policy; existing claims keep the policy they were claimed under
// @Tags			brands
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			policy	body		UpdateRefundPolicyRequest				true	"Policy data"
// @Success		200		{object}	utils.APIResponse{data=BrandResponse}	"Policy updated"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Router			/brands/policy [put]
func (h *BrandHandler) UpdateRefundPolicy(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	var req UpdateRefundPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := brandUsecases.UpdateRefundPolicyCommand{
		BrandID:               accountID,
		RefundDays:            req.RefundDays,
		RefundPercentage:      req.RefundPercentage,
		UpToRefundAmountCents: req.UpToRefundAmountCents,
	}

	result, err := h.updateRefundPolicyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to update refund policy", "error", err, "brand_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "refund policy updated successfully", toBrandResponse(result.Brand))
}

type BalanceTransactionResponse struct {
	ID           uint      `json:"id"`
	BillID       uint      `json:"bill_id,omitempty"`
	SettlementID string    `json:"settlement_id"`
	Direction    string    `json:"direction"`
	AmountCents  int64     `json:"amount_cents"`
	Reason       string    `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type GetBalanceResponse struct {
	BalanceCents int64                        `json:"balance_cents"`
	Currency     string                       `json:"currency"`
	Transactions []BalanceTransactionResponse `json:"transactions"`
}

// @Summary		Get balance
// @Description	Fetch the authenticated brand's balance and settlement ledger
// @Tags			brands
// @Produce		json
// @Security		Bearer
// @Param			page		query		int											false	"Page number"
// @Param			page_size	query		int											false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=GetBalanceResponse}	"Balance"
// @Router			/brands/balance [get]
func (h *BrandHandler) GetBalance(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.getBalanceUC.Execute(c.Request.Context(), brandUsecases.GetBalanceQuery{
		BrandID:  accountID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	transactions := make([]BalanceTransactionResponse, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, BalanceTransactionResponse{
			ID:           tx.ID(),
			BillID:       tx.BillID(),
			SettlementID: tx.SettlementID(),
			Direction:    string(tx.Direction()),
			AmountCents:  tx.AmountCents(),
			Reason:       tx.Reason(),
			CreatedAt:    tx.CreatedAt(),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", GetBalanceResponse{
		BalanceCents: result.Brand.BalanceCents(),
		Currency:     result.Brand.Currency(),
		Transactions: transactions,
	})
}
