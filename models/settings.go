package models

// BankInfo is shown on the checkout page for manual transfers.
type BankInfo struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
	Cedula        string `json:"cedula"`
}

// StoreSettings is a singleton row; GET /settings creates it on first read.
type StoreSettings struct {
	ID             uint     `gorm:"primaryKey" json:"-"`
	WhatsAppNumber string   `json:"whatsapp_number"`
	BankInfo       BankInfo `gorm:"embedded;embeddedPrefix:bank_" json:"bank_info"`
}

// DefaultStoreSettings mirrors the values the store launched with.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		WhatsAppNumber: "89953348",
		BankInfo: BankInfo{
			BankName:      "BAC Credomatic",
			AccountNumber: "Configurar número de cuenta",
			AccountHolder: "Lumina & Co.",
			Cedula:        "Configurar cédula",
		},
	}
}
