package request

import (
	"errors"
	"strings"

	"imobiliaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidMoneyValue = errors.New("invalid money value")

// parseMoney converts a major-unit decimal string ("350000.00") into exact
// minor units. Rounding of sub-cent input is round-half-up, the one documented
// rule for every amount that crosses the HTTP boundary. An empty currency
// defaults to BRL.
func parseMoney(amount, currency string) (entities.Money, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return entities.Money{}, ErrInvalidMoneyValue
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return entities.Money{}, ErrInvalidMoneyValue
	}
	m, err := entities.NewMoneyFromDecimal(d, resolveCurrency(currency))
	if err != nil {
		return entities.Money{}, err
	}
	return m, nil
}

func resolveCurrency(currency string) entities.Currency {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return entities.CurrencyBRL
	}
	return entities.Currency(currency)
}
