package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	appbill "github.com/payflow/backend/internal/application/bill"
	"github.com/payflow/backend/internal/domain/bill"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

// BillHandler handles bill management endpoints
type BillHandler struct {
	BaseHandler
	createUC       *appbill.CreateBillUseCase
	updateUC       *appbill.UpdateBillUseCase
	payUC          *appbill.PayBillUseCase
	findUC         *appbill.FindBillUseCase
	listUC         *appbill.ListBillsUseCase
	totalPaidUC    *appbill.CalculateTotalPaidUseCase
	changeStatusUC *appbill.ChangeBillStatusUseCase
	importUC       *appbill.ImportBillsUseCase
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(
	createUC *appbill.CreateBillUseCase,
	updateUC *appbill.UpdateBillUseCase,
	payUC *appbill.PayBillUseCase,
	findUC *appbill.FindBillUseCase,
	listUC *appbill.ListBillsUseCase,
	totalPaidUC *appbill.CalculateTotalPaidUseCase,
	changeStatusUC *appbill.ChangeBillStatusUseCase,
	importUC *appbill.ImportBillsUseCase,
) *BillHandler {
	return &BillHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		payUC:          payUC,
		findUC:         findUC,
		listUC:         listUC,
		totalPaidUC:    totalPaidUC,
		changeStatusUC: changeStatusUC,
		importUC:       importUC,
	}
}

// Create handles POST /bills
func (h *BillHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dueDate, err := time.Parse(valueobject.DateLayout, req.DueDate)
	if err != nil {
		h.BadRequest(c, "dueDate must be in format yyyy-MM-dd")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), appbill.CreateCommand{
		DueDate:     dueDate,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, NewBillResponse(result.Bill))
}

// Get handles GET /bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := h.billID(c)
	if !ok {
		return
	}

	result, err := h.findUC.Execute(c.Request.Context(), appbill.FindCommand{ID: id})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewBillResponse(result.Bill))
}

// Update handles PUT /bills/:id
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := h.billID(c)
	if !ok {
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dueDate, err := time.Parse(valueobject.DateLayout, req.DueDate)
	if err != nil {
		h.BadRequest(c, "dueDate must be in format yyyy-MM-dd")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), appbill.UpdateCommand{
		ID:          id,
		DueDate:     dueDate,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewBillResponse(result.Bill))
}

// Pay handles PATCH /bills/:id/pay
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := h.billID(c)
	if !ok {
		return
	}

	var req PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	paymentDate, err := time.Parse(valueobject.DateLayout, req.PaymentDate)
	if err != nil {
		h.BadRequest(c, "paymentDate must be in format yyyy-MM-dd")
		return
	}

	result, err := h.payUC.Execute(c.Request.Context(), appbill.PayCommand{
		ID:          id,
		PaymentDate: paymentDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewBillResponse(result.Bill))
}

// ChangeStatus handles PATCH /bills/:id/status
func (h *BillHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.billID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := bill.ParseStatus(req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), appbill.ChangeStatusCommand{
		ID:        id,
		NewStatus: status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewBillResponse(result.Bill))
}

// List handles GET /bills
func (h *BillHandler) List(c *gin.Context) {
	var req ListBillsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	startDate, err := time.Parse(valueobject.DateLayout, req.StartDate)
	if err != nil {
		h.BadRequest(c, "startDate must be in format yyyy-MM-dd")
		return
	}
	endDate, err := time.Parse(valueobject.DateLayout, req.EndDate)
	if err != nil {
		h.BadRequest(c, "endDate must be in format yyyy-MM-dd")
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), appbill.ListCommand{
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
		Page:        req.Page,
		Size:        req.Size,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c,
		NewBillResponses(result.Bills),
		result.TotalElements,
		result.CurrentPage,
		result.PageSize,
		int(result.TotalPages()),
	)
}

// TotalPaid handles GET /bills/total-paid
func (h *BillHandler) TotalPaid(c *gin.Context) {
	var req TotalPaidRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	startDate, err := time.Parse(valueobject.DateLayout, req.StartDate)
	if err != nil {
		h.BadRequest(c, "startDate must be in format yyyy-MM-dd")
		return
	}
	endDate, err := time.Parse(valueobject.DateLayout, req.EndDate)
	if err != nil {
		h.BadRequest(c, "endDate must be in format yyyy-MM-dd")
		return
	}

	result, err := h.totalPaidUC.Execute(c.Request.Context(), appbill.CalculateTotalPaidCommand{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, TotalPaidResponse{TotalPaid: result.TotalPaid.String()})
}

// Import handles POST /bills/import
func (h *BillHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file must be provided in the 'file' field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importUC.Execute(c.Request.Context(), appbill.ImportCommand{
		File:     file,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ImportResponse{
		TotalProcessed: result.TotalProcessed,
		SuccessCount:   result.SuccessCount,
		ErrorCount:     result.ErrorCount,
		Message:        result.Message,
	})
}

// billID parses the :id path parameter, replying 400 on bad input.
func (h *BillHandler) billID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "Bill ID must be a positive integer")
		return 0, false
	}
	return id, true
}
