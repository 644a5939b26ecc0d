package store

import (
	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/models"
)

// MockCardStore is an in-memory CardSource for testing.
type MockCardStore struct {
	Cards []models.CreditCardSnapshot

	// LoadError is returned by every call when set.
	LoadError error
}

// LoadCards returns a copy of the mock cards.
func (m *MockCardStore) LoadCards() ([]models.CreditCardSnapshot, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return append([]models.CreditCardSnapshot(nil), m.Cards...), nil
}

// FindCard returns the mock card with the given ID.
func (m *MockCardStore) FindCard(id string) (models.CreditCardSnapshot, error) {
	if m.LoadError != nil {
		return models.CreditCardSnapshot{}, m.LoadError
	}
	for _, card := range m.Cards {
		if card.ID == id {
			return card, nil
		}
	}
	return models.CreditCardSnapshot{}, &calcerror.CardNotFoundError{FilePath: "mock", CardID: id}
}

var (
	_ CardSource = (*CardStore)(nil)
	_ CardSource = (*MockCardStore)(nil)
)
