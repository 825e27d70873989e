package card

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bankinc/internal/models"
	"bankinc/internal/repositories"
	"bankinc/internal/validation"

	"github.com/shopspring/decimal"
)

type service struct {
	repo    repositories.CardRepository
	cache   repositories.CacheRepository
	rng     RandomSource
	metrics MetricsCollector
	now     func() time.Time
}

// NewService creates a new card service.
func NewService(
	repo repositories.CardRepository,
	cache repositories.CacheRepository,
	rng RandomSource,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if rng == nil {
		rng = NewRandomSource()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		rng:     rng,
		metrics: metrics,
		now:     time.Now,
	}
}

// IssueCard generates a new card for the given 6-digit product code and
// returns its 16-digit number. The card starts inactive, blocked and
// with a zero balance.
func (s *service) IssueCard(ctx context.Context, productCode string) (string, error) {
	if !validation.IsProductCode(productCode) {
		return "", ErrInvalidProductCode
	}

	number := productCode + s.rng.Digits(CardNumberLength-ProductCodeLength)
	holder := holderNames[s.rng.Intn(len(holderNames))] + " " + holderSurnames[s.rng.Intn(len(holderSurnames))]
	expiration := s.now().AddDate(ExpirationYears, 0, 0).Format(ExpirationLayout)

	card := &models.Card{
		CardNumber:     number,
		HolderName:     holder,
		ExpirationDate: expiration,
		Active:         false,
		Blocked:        true,
		Balance:        decimal.Zero,
	}

	if err := s.repo.Create(card); err != nil {
		s.metrics.RecordError("issue_card", "persistence")
		return "", fmt.Errorf("%w: %v", ErrCardPersistence, err)
	}

	s.metrics.RecordOperationResult("issue_card", "success")
	return number, nil
}

func (s *service) Activate(ctx context.Context, cardNumber string) error {
	card, err := s.repo.GetByNumber(cardNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	if card.Active {
		return ErrCardAlreadyActive
	}

	card.Active = true
	card.Blocked = false
	if err := s.repo.Update(card); err != nil {
		s.metrics.RecordError("activate", "persistence")
		return fmt.Errorf("%w: %v", ErrCardPersistence, err)
	}

	s.invalidateCard(ctx, cardNumber)
	s.metrics.RecordOperationResult("activate", "success")
	return nil
}

func (s *service) Block(ctx context.Context, cardNumber string) error {
	card, err := s.repo.GetByNumber(cardNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	if card.Blocked {
		return ErrCardAlreadyBlocked
	}

	card.Blocked = true
	if err := s.repo.Update(card); err != nil {
		s.metrics.RecordError("block", "persistence")
		return fmt.Errorf("%w: %v", ErrCardPersistence, err)
	}

	s.invalidateCard(ctx, cardNumber)
	s.metrics.RecordOperationResult("block", "success")
	return nil
}

// Recharge adds amount to the card's spending limit. Only active,
// unblocked cards can be recharged. The balance write runs under a row
// lock so concurrent mutations on the same card serialize.
func (s *service) Recharge(ctx context.Context, cardNumber string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	err := s.repo.ExecuteInTransaction(func(tx repositories.CardRepository) error {
		card, err := tx.GetByNumberForUpdate(cardNumber)
		if err != nil {
			if errors.Is(err, repositories.ErrCardNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		if !card.Active {
			return ErrCardNotFound
		}
		if card.Blocked {
			return ErrCardBlocked
		}

		card.Balance = card.Balance.Add(amount)
		return tx.Update(card)
	})
	if err != nil {
		if isExpectedCardError(err) {
			return err
		}
		s.metrics.RecordError("recharge", "persistence")
		return fmt.Errorf("%w: %v", ErrCardPersistence, err)
	}

	s.invalidateCard(ctx, cardNumber)
	amt, _ := amount.Float64()
	s.metrics.RecordBalanceChange(cardNumber, amt)
	s.metrics.RecordOperationResult("recharge", "success")
	return nil
}

func (s *service) GetBalance(ctx context.Context, cardNumber string) (decimal.Decimal, error) {
	card, err := s.GetCard(ctx, cardNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return card.Balance, nil
}

func (s *service) GetCard(ctx context.Context, cardNumber string) (*models.Card, error) {
	if card, err := s.cache.GetCard(ctx, cardNumber); err == nil {
		return card, nil
	}

	card, err := s.repo.GetByNumber(cardNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	if err := s.cache.SetCard(ctx, card, CardCacheDuration); err != nil {
		log.Printf("failed to cache card %s: %v", cardNumber, err)
	}
	return card, nil
}

func (s *service) UpdateCard(ctx context.Context, card *models.Card) error {
	if card == nil || !validation.IsCardNumber(card.CardNumber) {
		return ErrInvalidCard
	}

	if err := s.repo.Update(card); err != nil {
		s.metrics.RecordError("update_card", "persistence")
		return fmt.Errorf("%w: %v", ErrCardPersistence, err)
	}

	s.invalidateCard(ctx, card.CardNumber)
	return nil
}

func (s *service) invalidateCard(ctx context.Context, cardNumber string) {
	if err := s.cache.DeleteCard(ctx, cardNumber); err != nil {
		log.Printf("failed to invalidate card cache for %s: %v", cardNumber, err)
	}
}

func isExpectedCardError(err error) bool {
	return errors.Is(err, ErrCardNotFound) ||
		errors.Is(err, ErrCardBlocked) ||
		errors.Is(err, ErrInvalidAmount)
}
