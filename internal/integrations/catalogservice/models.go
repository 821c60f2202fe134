package catalogservice

// Package модель пакета услуг из CatalogService
type Package struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Active      bool        `json:"active"`
	Tiers       []PriceTier `json:"tiers"`
}

// PriceTier тариф пакета: цена для диапазона площади и частоты уборки
type PriceTier struct {
	MinAreaSqm int     `json:"min_area_sqm"`
	MaxAreaSqm int     `json:"max_area_sqm"` // 0 = без верхней границы
	Frequency  string  `json:"frequency"`    // once | weekly | biweekly | monthly; пусто = любая
	Price      float64 `json:"price"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
