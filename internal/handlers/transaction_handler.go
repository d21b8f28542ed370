package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "greenchain/internal/errors"
	"greenchain/internal/models"
	"greenchain/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a purchase.
// Amount is a pointer so a missing field is distinguishable from zero; a
// non-numeric amount fails JSON binding.
type CreateTransactionRequest struct {
	CategoryID uint     `json:"category_id" binding:"required"`
	Amount     *float64 `json:"amount" binding:"required"`
	Date       string   `json:"date" binding:"required,txdate"`
}

// UpdateTransactionRequest represents the request payload for updating a purchase.
type UpdateTransactionRequest struct {
	CategoryID *uint    `json:"category_id"`
	Amount     *float64 `json:"amount" binding:"required"`
	Date       string   `json:"date" binding:"required,txdate"`
}

// BulkTransactionRequest represents the request payload for an atomic batch add.
type BulkTransactionRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// TransactionResponse represents a transaction on the wire, with the
// category resolved to its name and NAICS code and the date as YYYY-MM-DD.
type TransactionResponse struct {
	ID           uint    `json:"id"`
	UserID       uint    `json:"user_id"`
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	NaicsCode    string  `json:"naics_code"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Emissions    float64 `json:"emissions"`
}

func toTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		UserID:       tx.UserID,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.Category.Name,
		NaicsCode:    tx.Category.NaicsCode,
		Amount:       tx.Amount,
		Date:         tx.Date.Format(txDateLayout),
		Emissions:    tx.Emissions,
	}
}

// ListTransactions lists a user's transactions, newest first
// @Summary     List user transactions
// @Description Get all of a user's transactions, newest date first. Returns an empty array for a user with no transactions or an unknown user.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       userId path int true "User ID"
// @Success     200 {array} TransactionResponse "Transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateTransaction records a purchase
// @Summary     Add transaction
// @Description Record a purchase for a user. Emissions are derived from the category's industry factor and the user's aggregates are updated atomically.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       userId  path int                      true "User ID"
// @Param       request body CreateTransactionRequest true "Purchase details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Unknown user or category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseTxDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, req.CategoryID, *req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// UpdateTransaction updates an existing purchase
// @Summary     Update transaction
// @Description Update a transaction's category, amount, and date. Emissions are recomputed and the user's aggregates corrected for the delta.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       userId  path int                      true "User ID"
// @Param       id      path int                      true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found or not owned by user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseTxDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, req.CategoryID, *req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction removes a purchase
// @Summary     Delete transaction
// @Description Delete a transaction, subtracting exactly its contribution from the user's aggregates.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       userId path int true "User ID"
// @Param       id     path int true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found or not owned by user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkCreate records a batch of purchases atomically
// @Summary     Bulk add transactions
// @Description Record a batch of purchases. The batch is all-or-nothing: any invalid entry rolls back the whole batch.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       userId  path int                    true "User ID"
// @Param       request body BulkTransactionRequest true "Batch of purchases"
// @Success     201 {object} map[string]interface{} "Created transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Unknown user or category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/bulk-transaction [post]
func (h *TransactionHandler) BulkCreate(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BulkTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.BulkTransactionInput, 0, len(req.Transactions))
	for _, entry := range req.Transactions {
		date, err := parseTxDate(entry.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		inputs = append(inputs, services.BulkTransactionInput{
			CategoryID: entry.CategoryID,
			Amount:     *entry.Amount,
			Date:       date,
		})
	}

	created, err := h.transactionService.BulkCreate(userID, inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(created))
	for i := range created {
		responses = append(responses, toTransactionResponse(&created[i]))
	}
	c.JSON(http.StatusCreated, gin.H{
		"userId":       userID,
		"transactions": responses,
	})
}

// GetCarbonInsights returns the aggregation views
// @Summary     Carbon insights
// @Description Per-category and per-month emission aggregations over the user's full transaction set. Empty arrays when the user has no data.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       userId path int true "User ID"
// @Success     200 {object} services.CarbonInsights "Aggregated insights"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/carbon-insights [get]
func (h *TransactionHandler) GetCarbonInsights(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	insights, err := h.transactionService.GetCarbonInsights(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
