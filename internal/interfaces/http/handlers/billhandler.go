package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	billingUsecases "github.com/tagcash-inc/tagcash/internal/application/billing/usecases"
	"github.com/tagcash-inc/tagcash/internal/shared/id"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/utils"
)

type BillHandler struct {
	createBillUC        createBillUseCase
	verifyPaymentUC     verifyPaymentUseCase
	submitContentUC     submitContentUseCase
	updateContentUC     updateContentUseCase
	brandDecideUC       brandDecideUseCase
	refreshEngagementUC refreshEngagementUseCase
	getBillUC           getBillUseCase
	listBillsUC         listBillsUseCase
	deleteBillUC        deleteBillUseCase
	logger              logger.Interface
}

func NewBillHandler(
	createBillUC createBillUseCase,
	verifyPaymentUC verifyPaymentUseCase,
	submitContentUC submitContentUseCase,
	updateContentUC updateContentUseCase,
	brandDecideUC brandDecideUseCase,
	refreshEngagementUC refreshEngagementUseCase,
	getBillUC getBillUseCase,
	listBillsUC listBillsUseCase,
	deleteBillUC deleteBillUseCase,
	logger logger.Interface,
) *BillHandler {
	return &BillHandler{
		createBillUC:        createBillUC,
		verifyPaymentUC:     verifyPaymentUC,
		submitContentUC:     submitContentUC,
		updateContentUC:     updateContentUC,
		brandDecideUC:       brandDecideUC,
		refreshEngagementUC: refreshEngagementUC,
		getBillUC:           getBillUC,
		listBillsUC:         listBillsUC,
		deleteBillUC:        deleteBillUC,
		logger:              logger,
	}
}

type CreateBillRequest struct {
	BrandID     uint   `json:"brand_id" validate:"required"`
	PaymentType string `json:"payment_type" validate:"required,oneof=pay_now upload_bill"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Currency    string `json:"currency"`
	BillNo      string `json:"bill_no"`
	BillURL     string `json:"bill_url"`
}

type CreateBillResponse struct {
	Bill           BillResponse `json:"bill"`
	GatewayOrderID string       `json:"gateway_order_id,omitempty"`
}

// @Summary		Create bill
// @Description	Open a new bill against a brand, optionally creating a gateway order for pay_now bills
// @Tags			bills
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			bill	body		CreateBillRequest								true	"Bill data"
// @Success		201		{object}	utils.APIResponse{data=CreateBillResponse}	"Bill created successfully"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		401		{object}	utils.APIResponse								"Unauthorized"
// @Router			/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.CreateBillCommand{
		CustomerID:  accountID,
		BrandID:     req.BrandID,
		PaymentType: req.PaymentType,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		BillNo:      req.BillNo,
		BillURL:     req.BillURL,
	}

	result, err := h.createBillUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to create bill", "error", err, "customer_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateBillResponse{
		Bill:           toBillResponse(result.Bill),
		GatewayOrderID: result.GatewayOrderID,
	}, "bill created successfully")
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required"`
	Signature        string `json:"signature" validate:"required"`
}

// @Summary		Verify payment
// @Description	Verify a gateway payment signature and mark the bill paid
// @Tags			bills
// @Accept			json
// @Produce		json
// @Param			payment	body		VerifyPaymentRequest						true	"Payment verification data"
// @Success		200		{object}	utils.APIResponse{data=BillResponse}	"Payment verified"
// @Failure		400		{object}	utils.APIResponse							"Verification failed"
// @Router			/bills/payments/verify [post]
func (h *BillHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.VerifyPaymentCommand{
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
	}

	result, err := h.verifyPaymentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("payment verification failed", "error", err, "gateway_order_id", req.GatewayOrderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment verified successfully", toBillResponse(result.Bill))
}

type SubmitContentRequest struct {
	ContentType     string `json:"content_type" validate:"required,oneof=reel story post"`
	ContentURL      string `json:"content_url" validate:"required,url"`
	InstaContentURL string `json:"insta_content_url" validate:"omitempty,url"`
}

// @Summary		Submit content
// @Description	Attach published content to a bill and move it to pending approval
// @Tags			bills
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		string									true	"Bill ID or SID"
// @Param			content	body		SubmitContentRequest					true	"Content data"
// @Success		200		{object}	utils.APIResponse{data=BillResponse}	"Content submitted"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Failure		403		{object}	utils.APIResponse						"Forbidden"
// @Router			/bills/{id}/content [post]
func (h *BillHandler) SubmitContent(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	billID, err := h.resolveBillID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.SubmitContentCommand{
		BillID:          billID,
		CustomerID:      accountID,
		ContentType:     req.ContentType,
		ContentURL:      req.ContentURL,
		InstaContentURL: req.InstaContentURL,
	}

	result, err := h.submitContentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to submit content", "error", err, "bill_id", billID, "customer_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "content submitted successfully", toBillResponse(result.Bill))
}

type UpdateContentRequest struct {
	ContentURL      string `json:"content_url" validate:"omitempty,url"`
	InstaContentURL string `json:"insta_content_url" validate:"omitempty,url"`
}

// @Summary		Update content URLs
// @Description	Replace the content URLs on a bill awaiting approval
// @Tags			bills
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		string									true	"Bill ID or SID"
// @Param			content	body		UpdateContentRequest					true	"Content URLs"
// @Success		200		{object}	utils.APIResponse{data=BillResponse}	"Content updated"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Router			/bills/{id}/content [put]
func (h *BillHandler) UpdateContent(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	billID, err := h.resolveBillID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.UpdateContentCommand{
		BillID:          billID,
		CustomerID:      accountID,
		ContentURL:      req.ContentURL,
		InstaContentURL: req.InstaContentURL,
	}

	result, err := h.updateContentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "content updated successfully", toBillResponse(result.Bill))
}

type DecideBillRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// @Summary		Decide bill
// @Description	Approve or reject submitted content as the billed brand
// @Tags			bills
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id			path		string									true	"Bill ID or SID"
// @Param			decision	body		DecideBillRequest						true	"Decision"
// @Success		200			{object}	utils.APIResponse{data=BillResponse}	"Decision recorded"
// @Failure		400			{object}	utils.APIResponse						"Bad request"
// @Failure		403			{object}	utils.APIResponse						"Forbidden"
// @Router			/bills/{id}/decision [post]
func (h *BillHandler) Decide(c *gin.Context) {
	accountID, _, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	billID, err := h.resolveBillID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecideBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := billingUsecases.BrandDecideCommand{
		BillID:   billID,
		BrandID:  accountID,
		Decision: req.Decision,
	}

	result, err := h.brandDecideUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to record decision", "error", err, "bill_id", billID, "brand_id", accountID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "decision recorded successfully", toBillResponse(result.Bill))
}

type RefreshEngagementResponse struct {
	Bill      BillResponse `json:"bill"`
	FromCache bool         `json:"from_cache"`
}

// @Summary		Refresh engagement
// @Description	Pull fresh engagement counters for the bill's content
// @Tags			bills
// @Produce		json
// @Security		Bearer
// @Param			id	path		string											true	"Bill ID or SID"
// @Success		200	{object}	utils.APIResponse{data=RefreshEngagementResponse}	"Engagement refreshed"
// @Failure		400	{object}	utils.APIResponse									"Bad request"
// @Failure		502	{object}	utils.APIResponse									"Upstream fetch failed"
// @Router			/bills/{id}/engagement [post]
func (h *BillHandler) RefreshEngagement(c *gin.Context) {
	billID, err := h.resolveBillID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.refreshEngagementUC.Execute(c.Request.Context(), billingUsecases.RefreshEngagementCommand{BillID: billID})
	if err != nil {
		h.logger.Warnw("failed to refresh engagement", "error", err, "bill_id", billID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "engagement refreshed", RefreshEngagementResponse{
		Bill:      toBillResponse(result.Bill),
		FromCache: result.FromCache,
	})
}

// @Summary		Get bill
// @Description	Fetch a single bill by numeric ID or prefixed SID
// @Tags			bills
// @Produce		json
// @Security		Bearer
// @Param			id	path		string									true	"Bill ID or SID"
// @Success		200	{object}	utils.APIResponse{data=BillResponse}	"Bill"
// @Failure		404	{object}	utils.APIResponse						"Not found"
// @Router			/bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	accountID, role, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	query := billingUsecases.GetBillQuery{
		RequesterID:   accountID,
		RequesterRole: role,
	}

	raw := c.Param("id")
	if strings.HasPrefix(raw, id.PrefixBill+"_") {
		query.SID = raw
	} else {
		billID, err := utils.ParseUintParam(c, "id", "bill")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.BillID = billID
	}

	result, err := h.getBillUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toBillResponse(result.Bill))
}

// @Summary		List bills
// @Description	List bills visible to the requester, newest first
// @Tags			bills
// @Produce		json
// @Security		Bearer
// @Param			status		query		string								false	"Filter by status"
// @Param			customer_id	query		int									false	"Filter by customer (admin only)"
// @Param			brand_id	query		int									false	"Filter by brand"
// @Param			page		query		int									false	"Page number"
// @Param			page_size	query		int									false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse}	"Bills"
// @Router			/bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	accountID, role, ok := requesterFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "account not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)

	query := billingUsecases.ListBillsQuery{
		Status:        c.Query("status"),
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
		RequesterID:   accountID,
		RequesterRole: role,
	}

	if raw := c.Query("customer_id"); raw != "" {
		if parsed, err := utils.ParseUintQuery(raw); err == nil {
			query.CustomerID = parsed
		}
	}
	if raw := c.Query("brand_id"); raw != "" {
		if parsed, err := utils.ParseUintQuery(raw); err == nil {
			query.BrandID = parsed
		}
	}

	result, err := h.listBillsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toBillResponses(result.Bills), result.Total, pagination.Page, pagination.PageSize)
}

// @Summary		Delete bill
// @Description	Soft-delete a bill; it disappears from all lookups and listings
// @Tags			bills
// @Produce		json
// @Security		Bearer
// @Param			id	path	string	true	"Bill ID or SID"
// @Success		204	"Deleted"
// @Failure		404	{object}	utils.APIResponse	"Not found"
// @Router			/bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	billID, err := h.resolveBillID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteBillUC.Execute(c.Request.Context(), billingUsecases.DeleteBillCommand{BillID: billID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// resolveBillID turns the :id path parameter into a numeric bill ID,
// resolving prefixed SIDs through the lookup use case.
func (h *BillHandler) resolveBillID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if strings.HasPrefix(raw, id.PrefixBill+"_") {
		accountID, role, _ := requesterFrom(c)
		result, err := h.getBillUC.Execute(c.Request.Context(), billingUsecases.GetBillQuery{
			SID:           raw,
			RequesterID:   accountID,
			RequesterRole: role,
		})
		if err != nil {
			return 0, err
		}
		return result.Bill.ID(), nil
	}

	return utils.ParseUintParam(c, "id", "bill")
}
