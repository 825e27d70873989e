package card

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankinc/internal/models"
	"bankinc/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCardRepo struct {
	cards     map[string]*models.Card
	nextID    uint
	createErr error
	updateErr error
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]*models.Card)}
}

func (r *fakeCardRepo) Create(card *models.Card) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	card.ID = r.nextID
	cp := *card
	r.cards[card.CardNumber] = &cp
	return nil
}

func (r *fakeCardRepo) GetByNumber(number string) (*models.Card, error) {
	card, ok := r.cards[number]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	cp := *card
	return &cp, nil
}

func (r *fakeCardRepo) GetActiveByNumber(number string) (*models.Card, error) {
	card, err := r.GetByNumber(number)
	if err != nil || !card.Active {
		return nil, repositories.ErrCardNotFound
	}
	return card, nil
}

func (r *fakeCardRepo) GetByNumberForUpdate(number string) (*models.Card, error) {
	return r.GetByNumber(number)
}

func (r *fakeCardRepo) Update(card *models.Card) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *card
	r.cards[card.CardNumber] = &cp
	return nil
}

func (r *fakeCardRepo) ExecuteInTransaction(fn func(repositories.CardRepository) error) error {
	snapshot := make(map[string]*models.Card, len(r.cards))
	for k, v := range r.cards {
		cp := *v
		snapshot[k] = &cp
	}
	if err := fn(r); err != nil {
		r.cards = snapshot
		return err
	}
	return nil
}

type missCache struct{}

func (missCache) GetCard(context.Context, string) (*models.Card, error) {
	return nil, errors.New("cache miss")
}
func (missCache) SetCard(context.Context, *models.Card, time.Duration) error { return nil }
func (missCache) DeleteCard(context.Context, string) error                   { return nil }
func (missCache) Get(context.Context, string) (string, error) {
	return "", errors.New("cache miss")
}
func (missCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (missCache) Delete(context.Context, string) error                          { return nil }

type fixedRand struct{}

func (fixedRand) Digits(n int) string {
	const digits = "0123456789"
	return digits[:n]
}

func (fixedRand) Intn(int) int { return 0 }

func newTestService(repo *fakeCardRepo) *service {
	svc := NewService(repo, missCache{}, fixedRand{}, nil).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func issueTestCard(t *testing.T, svc *service) string {
	t.Helper()
	number, err := svc.IssueCard(context.Background(), "401234")
	require.NoError(t, err)
	return number
}

func TestCardService_IssueCard(t *testing.T) {
	t.Run("issues a card with generated number and defaults", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := newTestService(repo)

		number, err := svc.IssueCard(context.Background(), "401234")
		require.NoError(t, err)

		assert.Len(t, number, 16)
		assert.Equal(t, "4012340123456789", number)

		card := repo.cards[number]
		require.NotNil(t, card)
		assert.Equal(t, "Juan Gomez", card.HolderName)
		assert.Equal(t, "06/2028", card.ExpirationDate)
		assert.False(t, card.Active)
		assert.True(t, card.Blocked)
		assert.True(t, card.Balance.IsZero())
	})

	t.Run("rejects malformed product codes", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := newTestService(repo)

		for _, code := range []string{"", "12345", "1234567", "12a456", "12345x"} {
			_, err := svc.IssueCard(context.Background(), code)
			assert.ErrorIs(t, err, ErrInvalidProductCode, "product code %q", code)
		}
		assert.Empty(t, repo.cards)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		repo := newFakeCardRepo()
		repo.createErr = errors.New("connection reset")
		svc := newTestService(repo)

		_, err := svc.IssueCard(context.Background(), "401234")
		assert.ErrorIs(t, err, ErrCardPersistence)
	})
}

func TestCardService_Activate(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestService(repo)
	number := issueTestCard(t, svc)

	t.Run("activates a freshly issued card", func(t *testing.T) {
		err := svc.Activate(context.Background(), number)
		require.NoError(t, err)

		card := repo.cards[number]
		assert.True(t, card.Active)
		assert.False(t, card.Blocked)
	})

	t.Run("rejects a second activation", func(t *testing.T) {
		err := svc.Activate(context.Background(), number)
		assert.ErrorIs(t, err, ErrCardAlreadyActive)
	})

	t.Run("unknown card", func(t *testing.T) {
		err := svc.Activate(context.Background(), "9999999999999999")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestCardService_Block(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestService(repo)
	number := issueTestCard(t, svc)

	t.Run("issued cards start blocked", func(t *testing.T) {
		err := svc.Block(context.Background(), number)
		assert.ErrorIs(t, err, ErrCardAlreadyBlocked)
	})

	t.Run("blocks an active card", func(t *testing.T) {
		require.NoError(t, svc.Activate(context.Background(), number))

		err := svc.Block(context.Background(), number)
		require.NoError(t, err)

		card := repo.cards[number]
		assert.True(t, card.Blocked)
		assert.True(t, card.Active)
	})

	t.Run("unknown card", func(t *testing.T) {
		err := svc.Block(context.Background(), "9999999999999999")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestCardService_Recharge(t *testing.T) {
	t.Run("adds the amount to the balance", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := newTestService(repo)
		number := issueTestCard(t, svc)
		require.NoError(t, svc.Activate(context.Background(), number))

		err := svc.Recharge(context.Background(), number, decimal.NewFromFloat(100.00))
		require.NoError(t, err)

		balance, err := svc.GetBalance(context.Background(), number)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromFloat(100.00)), "balance = %s", balance)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := newTestService(repo)
		number := issueTestCard(t, svc)
		require.NoError(t, svc.Activate(context.Background(), number))

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-10)} {
			err := svc.Recharge(context.Background(), number, amount)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})

	t.Run("inactive card is not found", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := newTestService(repo)
		number := issueTestCard(t, svc)

		err := svc.Recharge(context.Background(), number, decimal.NewFromFloat(50))
		assert.ErrorIs(t, err, ErrCardNotFound)
	})

	t.Run("blocked card cannot be recharged", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := newTestService(repo)
		number := issueTestCard(t, svc)
		require.NoError(t, svc.Activate(context.Background(), number))
		require.NoError(t, svc.Block(context.Background(), number))

		err := svc.Recharge(context.Background(), number, decimal.NewFromFloat(50))
		assert.ErrorIs(t, err, ErrCardBlocked)

		balance, err := svc.GetBalance(context.Background(), number)
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})
}

func TestCardService_GetBalance(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestService(repo)

	_, err := svc.GetBalance(context.Background(), "9999999999999999")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCardService_UpdateCard(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestService(repo)

	assert.ErrorIs(t, svc.UpdateCard(context.Background(), nil), ErrInvalidCard)
	assert.ErrorIs(t, svc.UpdateCard(context.Background(), &models.Card{}), ErrInvalidCard)

	number := issueTestCard(t, svc)
	card, err := svc.GetCard(context.Background(), number)
	require.NoError(t, err)

	card.Balance = decimal.NewFromFloat(42.50)
	require.NoError(t, svc.UpdateCard(context.Background(), card))

	balance, err := svc.GetBalance(context.Background(), number)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromFloat(42.50)))
}
