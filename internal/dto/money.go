package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack_app/internal/core/domain"
)

// MoneyDTO carries an amount together with its currency code.
type MoneyDTO struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"omitempty,max=3"`
}

// ToDomain converts the DTO into a validated domain Money value.
func (m MoneyDTO) ToDomain() (domain.Money, error) {
	return domain.NewMoney(m.Amount, m.Currency)
}

// ToMoneyDTO converts a domain Money value to its wire form.
func ToMoneyDTO(m domain.Money) MoneyDTO {
	return MoneyDTO{
		Amount:   m.Amount(),
		Currency: m.Currency(),
	}
}
