package handlers

import (
	"errors"

	"bankinc/internal/services/card"
	"bankinc/internal/services/transaction"
	"bankinc/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Purchase(c *fiber.Ctx) error {
	var input struct {
		CardID string          `json:"cardId"`
		Price  decimal.Decimal `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CardID == "" {
		return response.BadRequest(c, "cardId and price are required")
	}

	transactionID, err := h.transactionService.Purchase(c.Context(), input.CardID, input.Price)
	if err != nil {
		return transactionError(c, err)
	}

	return response.Success(c, fiber.Map{
		"transactionId": transactionID,
	})
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	txn, err := h.transactionService.GetTransaction(c.Context(), c.Params("transactionId"))
	if err != nil {
		return transactionError(c, err)
	}

	return response.Success(c, txn)
}

func (h *TransactionHandler) AnulateTransaction(c *fiber.Ctx) error {
	var input struct {
		CardID        string `json:"cardId"`
		TransactionID string `json:"transactionId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CardID == "" || input.TransactionID == "" {
		return response.BadRequest(c, "cardId and transactionId are required")
	}

	ok, err := h.transactionService.AnulateTransaction(c.Context(), input.CardID, input.TransactionID)
	if err != nil {
		return transactionError(c, err)
	}

	return response.Success(c, fiber.Map{
		"anulated": ok,
	})
}

func transactionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, transaction.ErrTransactionNotFound),
		errors.Is(err, card.ErrCardNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidTransactionID),
		errors.Is(err, transaction.ErrInvalidExpiry),
		errors.Is(err, transaction.ErrCardNotActive),
		errors.Is(err, transaction.ErrCardExpired),
		errors.Is(err, transaction.ErrInsufficientFunds),
		errors.Is(err, transaction.ErrNotCardTransaction),
		errors.Is(err, transaction.ErrAnulationWindowClosed),
		errors.Is(err, transaction.ErrAlreadyAnulated),
		errors.Is(err, card.ErrCardBlocked):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, err.Error())
	}
}
