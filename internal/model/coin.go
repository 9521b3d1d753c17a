package model

import "time"

// Coin represents a canonical coin record from the database.
// I18nNames is populated by the service layer from the coin's owned
// translation rows; it is nil when translations were not loaded.
type Coin struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	I18nNames map[string]string `json:"i18nNames,omitempty"`
}

// CoinTranslation is one localized name for one coin in one language.
// It carries a plain coin_id foreign key rather than a back-reference;
// ownership is managed by the service layer.
type CoinTranslation struct {
	ID        int64
	CoinID    int64
	LangCode  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
