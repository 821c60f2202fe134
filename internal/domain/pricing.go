package domain

import (
	"errors"
	"fmt"
)

// PriceMode is the strategy used to determine a booking's price
type PriceMode string

const (
	// PriceModePackage цена берется из тарифа пакета услуг
	PriceModePackage PriceMode = "package"
	// PriceModeOverride пакет указан для истории, но цена задана вручную
	PriceModeOverride PriceMode = "override"
	// PriceModeCustom полностью произвольная работа с произвольной ценой
	PriceModeCustom PriceMode = "custom"
)

// ErrUnknownPriceMode возвращается для режима цены вне закрытого перечисления
var ErrUnknownPriceMode = errors.New("domain: unknown price mode")

// IsValid returns true if the mode belongs to the closed enumeration
func (m PriceMode) IsValid() bool {
	switch m {
	case PriceModePackage, PriceModeOverride, PriceModeCustom:
		return true
	default:
		return false
	}
}

// ParsePriceMode конвертирует строку в PriceMode с валидацией
func ParsePriceMode(s string) (PriceMode, error) {
	mode := PriceMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPriceMode, s)
	}
	return mode, nil
}
