package handlers

import (
	"errors"

	"bankinc/internal/services/card"
	"bankinc/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// IssueCard generates a card number for the product code in the path.
func (h *CardHandler) IssueCard(c *fiber.Ctx) error {
	number, err := h.cardService.IssueCard(c.Context(), c.Params("productId"))
	if err != nil {
		return cardError(c, err)
	}

	return response.Success(c, fiber.Map{
		"cardId": number,
	})
}

func (h *CardHandler) ActivateCard(c *fiber.Ctx) error {
	var input struct {
		CardID string `json:"cardId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CardID == "" {
		return response.BadRequest(c, "cardId is required")
	}

	if err := h.cardService.Activate(c.Context(), input.CardID); err != nil {
		return cardError(c, err)
	}

	return response.Success(c, fiber.Map{
		"message": "Card activated successfully",
	})
}

func (h *CardHandler) BlockCard(c *fiber.Ctx) error {
	if err := h.cardService.Block(c.Context(), c.Params("cardId")); err != nil {
		return cardError(c, err)
	}

	return response.Success(c, fiber.Map{
		"message": "Card blocked successfully",
	})
}

func (h *CardHandler) RechargeBalance(c *fiber.Ctx) error {
	var input struct {
		CardID  string          `json:"cardId"`
		Balance decimal.Decimal `json:"balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CardID == "" {
		return response.BadRequest(c, "cardId and balance are required")
	}

	if err := h.cardService.Recharge(c.Context(), input.CardID, input.Balance); err != nil {
		return cardError(c, err)
	}

	return response.Success(c, fiber.Map{
		"message": "Balance recharged successfully",
	})
}

func (h *CardHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.cardService.GetBalance(c.Context(), c.Params("cardId"))
	if err != nil {
		return cardError(c, err)
	}

	return response.Success(c, fiber.Map{
		"balance": balance,
	})
}

// cardError maps card service errors to HTTP statuses: absent entities
// are 404, rule violations and malformed input are 400, anything else
// is a 500.
func cardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, card.ErrCardNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, card.ErrInvalidProductCode),
		errors.Is(err, card.ErrInvalidCard),
		errors.Is(err, card.ErrInvalidAmount),
		errors.Is(err, card.ErrCardAlreadyActive),
		errors.Is(err, card.ErrCardAlreadyBlocked),
		errors.Is(err, card.ErrCardBlocked):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, err.Error())
	}
}
