package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bankinc/internal/models"
	"bankinc/internal/repositories"
	"bankinc/internal/services/card"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	repo  repositories.TransactionRepository
	cards card.Service
	cache repositories.CacheRepository
	now   func() time.Time
}

// NewService creates a new transaction service.
func NewService(
	repo repositories.TransactionRepository,
	cards card.Service,
	cache repositories.CacheRepository,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cards == nil {
		panic("card service is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	return &service{
		repo:  repo,
		cards: cards,
		cache: cache,
		now:   time.Now,
	}
}

// Purchase debits price from the card's balance and records a ledger
// entry for it. The two writes share one database transaction with the
// card row locked, so balance and ledger never diverge and concurrent
// purchases against the same card serialize.
func (s *service) Purchase(ctx context.Context, cardNumber string, price decimal.Decimal) (string, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return "", ErrInvalidAmount
	}

	c, err := s.cards.GetCard(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return "", card.ErrCardNotFound
		}
		return "", fmt.Errorf("failed to resolve card: %w", err)
	}

	if !c.Active {
		return "", ErrCardNotActive
	}
	if c.Blocked {
		return "", card.ErrCardBlocked
	}

	now := s.now()
	expired, err := isCardExpired(c.ExpirationDate, now)
	if err != nil {
		return "", err
	}
	if expired {
		return "", ErrCardExpired
	}

	if c.Balance.LessThan(price) {
		return "", ErrInsufficientFunds
	}

	txn := &models.Transaction{
		ID:         uuid.NewString(),
		Price:      price,
		Timestamp:  now,
		Anulated:   false,
		CardNumber: cardNumber,
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.TransactionRepository) error {
		// Re-read under lock; the check above is a fast path only.
		locked, err := tx.GetCardForUpdate(cardNumber)
		if err != nil {
			return err
		}
		if locked.Balance.LessThan(price) {
			return ErrInsufficientFunds
		}

		txn.CardID = locked.ID
		locked.Balance = locked.Balance.Sub(price)
		if err := tx.UpdateCard(locked); err != nil {
			return err
		}
		return tx.Create(txn)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return "", ErrInsufficientFunds
		}
		return "", fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	s.invalidateCard(ctx, cardNumber)
	s.cacheTransaction(ctx, txn)
	return txn.ID, nil
}

func (s *service) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, ErrInvalidTransactionID
	}

	cacheKey := TransactionCachePrefix + transactionID
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var txn models.Transaction
		if err := json.Unmarshal([]byte(cached), &txn); err == nil {
			return &txn, nil
		}
	}

	txn, err := s.repo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	s.cacheTransaction(ctx, txn)
	return txn, nil
}

// AnulateTransaction voids a purchase and credits the debited amount
// back to the owning card. Only the card the transaction references can
// anulate it, at most once, within 24 hours of the purchase.
func (s *service) AnulateTransaction(ctx context.Context, cardNumber, transactionID string) (bool, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return false, ErrInvalidTransactionID
	}

	txn, err := s.repo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return false, ErrTransactionNotFound
		}
		return false, fmt.Errorf("failed to get transaction: %w", err)
	}

	if txn.CardNumber != cardNumber {
		return false, ErrNotCardTransaction
	}
	if s.now().Sub(txn.Timestamp) > AnulationWindow {
		return false, ErrAnulationWindowClosed
	}
	if txn.Anulated {
		return false, ErrAlreadyAnulated
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.TransactionRepository) error {
		locked, err := tx.GetCardForUpdate(txn.CardNumber)
		if err != nil {
			return err
		}

		// Re-read the ledger entry under the card lock; a concurrent
		// anulation of the same transaction must not credit twice.
		current, err := tx.GetByID(txn.ID)
		if err != nil {
			return err
		}
		if current.Anulated {
			return ErrAlreadyAnulated
		}

		current.Anulated = true
		locked.Balance = locked.Balance.Add(current.Price)
		if err := tx.UpdateCard(locked); err != nil {
			return err
		}
		if err := tx.Update(current); err != nil {
			return err
		}
		*txn = *current
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyAnulated) {
			return false, ErrAlreadyAnulated
		}
		return false, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	s.invalidateCard(ctx, cardNumber)
	s.cacheTransaction(ctx, txn)
	return true, nil
}

func (s *service) cacheTransaction(ctx context.Context, txn *models.Transaction) {
	cacheKey := TransactionCachePrefix + txn.ID
	if err := s.cache.Set(ctx, cacheKey, txn, TransactionCacheDuration); err != nil {
		log.Printf("failed to cache transaction %s: %v", txn.ID, err)
	}
}

func (s *service) invalidateCard(ctx context.Context, cardNumber string) {
	if err := s.cache.DeleteCard(ctx, cardNumber); err != nil {
		log.Printf("failed to invalidate card cache for %s: %v", cardNumber, err)
	}
}
