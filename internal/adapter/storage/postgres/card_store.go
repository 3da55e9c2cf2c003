package postgres

import (
	"context"
	"errors"
	"fmt"

	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CardStore implements ports.CardStore. The number column only ever holds
// ciphertext produced by the configured cipher.
type CardStore struct {
	pool   Pool
	cipher ports.CardCipher
}

// NewCardStore creates a new CardStore.
func NewCardStore(pool Pool, cipher ports.CardCipher) *CardStore {
	return &CardStore{pool: pool, cipher: cipher}
}

// Create inserts the card under a freshly generated id.
func (s *CardStore) Create(ctx context.Context, card domain.CreditCard) (uuid.UUID, error) {
	encNumber, err := s.encryptNumber(card.Number)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	query := `INSERT INTO credit_cards (id, name, number, expiry, card_limit)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.pool.Exec(ctx, query, id, card.Name, encNumber, card.Expiry, card.Limit); err != nil {
		return uuid.Nil, fmt.Errorf("insert credit card: %w", err)
	}
	return id, nil
}

// Get returns (nil, nil) when no card has the given number.
func (s *CardStore) Get(ctx context.Context, number domain.CardNumber) (*domain.CreditCard, error) {
	encNumber, err := s.encryptNumber(number)
	if err != nil {
		return nil, err
	}

	query := `SELECT name, number, expiry, card_limit FROM credit_cards WHERE number = $1`

	card, err := s.scanCard(s.pool.QueryRow(ctx, query, encNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit card: %w", err)
	}
	return card, nil
}

// List returns every card, oldest first.
func (s *CardStore) List(ctx context.Context) ([]domain.CreditCard, error) {
	query := `SELECT name, number, expiry, card_limit FROM credit_cards ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credit cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.CreditCard{}
	for rows.Next() {
		card, err := s.scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit card row: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit card rows: %w", err)
	}
	return cards, nil
}

// UpdateLimit returns domain.ErrCardNotFound when no row matched.
func (s *CardStore) UpdateLimit(ctx context.Context, number domain.CardNumber, limit int) (bool, error) {
	encNumber, err := s.encryptNumber(number)
	if err != nil {
		return false, err
	}

	tag, err := s.pool.Exec(ctx, `UPDATE credit_cards SET card_limit = $2 WHERE number = $1`, encNumber, limit)
	if err != nil {
		return false, fmt.Errorf("update credit card limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, domain.ErrCardNotFound
	}
	return true, nil
}

// Delete returns domain.ErrCardNotFound when no row matched.
func (s *CardStore) Delete(ctx context.Context, number domain.CardNumber) error {
	encNumber, err := s.encryptNumber(number)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM credit_cards WHERE number = $1`, encNumber)
	if err != nil {
		return fmt.Errorf("delete credit card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

func (s *CardStore) encryptNumber(number domain.CardNumber) (string, error) {
	enc, err := s.cipher.Encrypt(domain.SanitizeCardNumber(number))
	if err != nil {
		return "", fmt.Errorf("encrypt card number: %w: %w", domain.ErrCardCipher, err)
	}
	return enc, nil
}

func (s *CardStore) scanCard(row pgx.Row) (*domain.CreditCard, error) {
	var (
		card      domain.CreditCard
		encNumber string
	)
	if err := row.Scan(&card.Name, &encNumber, &card.Expiry, &card.Limit); err != nil {
		return nil, err
	}

	number, err := s.cipher.Decrypt(encNumber)
	if err != nil {
		return nil, fmt.Errorf("decrypt card number: %w: %w", domain.ErrCardCipher, err)
	}
	card.Number = number
	return &card, nil
}
