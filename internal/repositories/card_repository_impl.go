package repositories

import (
	"fmt"
	"strings"

	"bankinc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) Create(card *models.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return ErrDuplicateCard
		}
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *cardRepository) GetByNumber(number string) (*models.Card, error) {
	var card models.Card
	if err := r.db.Where("card_number = ?", number).First(&card).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) GetActiveByNumber(number string) (*models.Card, error) {
	var card models.Card
	if err := r.db.Where("card_number = ? AND active = ?", number, true).First(&card).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get active card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) GetByNumberForUpdate(number string) (*models.Card, error) {
	var card models.Card
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("card_number = ?", number).
		First(&card).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to lock card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) Update(card *models.Card) error {
	if err := r.db.Save(card).Error; err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	return nil
}

func (r *cardRepository) ExecuteInTransaction(fn func(CardRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&cardRepository{db: tx})
	})
}
