package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	billingUsecases "github.com/tagcash-inc/tagcash/internal/application/billing/usecases"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/utils"
)

// RefundHandler exposes the refund claim and the two settlement legs.
// Settlements are admin operations driven by payout reconciliation.
type RefundHandler struct {
	claimRefundUC          claimRefundUseCase
	settleCustomerRefundUC settleCustomerRefundUseCase
	settleBrandRefundUC    settleBrandRefundUseCase
	logger                 logger.Interface
}

func NewRefundHandler(
	claimRefundUC claimRefundUseCase,
	settleCustomerRefundUC settleCustomerRefundUseCase,
	settleBrandRefundUC settleBrandRefundUseCase,
	logger logger.Interface,
) *RefundHandler {
	return &RefundHandler{
		claimRefundUC:          claimRefundUC,
		settleCustomerRefundUC: settleCustomerRefundUC,
		settleBrandRefundUC:    settleBrandRefundUC,
		logger:                 logger,
	}
}

type ClaimRefundRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

type ClaimRefundResponse struct {
	Bill           BillResponse `json:"bill"`
	WindowDeadline time.Time    `json:"window_deadline"`
}

// @Summary		Claim refund
// @Description	Claim a refund on a decided bill within the brand's refund window
// @Tags			refunds
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		string										true	"Bill ID"
// @Param			claim	body		ClaimRefundRequest							true	"Claim data"
// @Success		200		{object}	utils.APIResponse{data=ClaimRefundResponse}	"Refund claimed"
// @Failure		400		{object}	utils.APIResponse							"Bad request"
// @Failure		422		{object}	utils.APIResponse							"Refund window expired"
// @Router			/bills/{id}/refund/claim [post]
func (h *RefundHandler) ClaimRefund(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	billID, err := utils.ParseUintParam(c, "id", "bill")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ClaimRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.ClaimRefundCommand{
		BillID:      billID,
		CustomerID:  accountID,
		AmountCents: req.AmountCents,
	}

	result, err := h.claimRefundUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("refund claim failed", "error", err, "bill_id", billID, "customer_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "refund claimed successfully", ClaimRefundResponse{
		Bill:           toBillResponse(result.Bill),
		WindowDeadline: result.WindowDeadline,
	})
}

type SettleRefundRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=success failed"`
}

// @Summary		Settle customer refund
// @Description	Record the terminal outcome of the customer refund leg
// @Tags			refunds
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		string									true	"Bill ID"
// @Param			outcome	body		SettleRefundRequest						true	"Settlement outcome"
// @Success		200		{object}	utils.APIResponse{data=BillResponse}	"Refund settled"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Router			/bills/{id}/refund/settle [post]
func (h *RefundHandler) SettleCustomerRefund(c *gin.Context) {
	billID, err := utils.ParseUintParam(c, "id", "bill")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SettleRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.SettleCustomerRefundCommand{
		BillID:  billID,
		Outcome: req.Outcome,
	}

	result, err := h.settleCustomerRefundUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("customer refund settlement failed", "error", err, "bill_id", billID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "refund settled successfully", toBillResponse(result.Bill))
}

type SettleBrandRefundResponse struct {
	Bill         BillResponse `json:"bill"`
	SettlementID string       `json:"settlement_id,omitempty"`
}

// @Summary		Settle brand refund
// @Description	Settle the brand-side refund leg, moving the brand's balance exactly once
// @Tags			refunds
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		string												true	"Bill ID"
// @Param			outcome	body		SettleRefundRequest									true	"Settlement outcome"
// @Success		200		{object}	utils.APIResponse{data=SettleBrandRefundResponse}	"Brand refund settled"
// @Failure		400		{object}	utils.APIResponse									"Bad request"
// @Failure		409		{object}	utils.APIResponse									"Already settled"
// @Router			/bills/{id}/refund/settle-brand [post]
func (h *RefundHandler) SettleBrandRefund(c *gin.Context) {
	billID, err := utils.ParseUintParam(c, "id", "bill")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SettleRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.SettleBrandRefundCommand{
		BillID:  billID,
		Outcome: req.Outcome,
	}

	result, err := h.settleBrandRefundUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("brand refund settlement failed", "error", err, "bill_id", billID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "brand refund settled successfully", SettleBrandRefundResponse{
		Bill:         toBillResponse(result.Bill),
		SettlementID: result.SettlementID,
	})
}
