package domain

import "time"

// Transaction types accepted at the API boundary. The column itself is plain
// text; the closed set is enforced when requests are bound.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Transaction Model
type Transaction struct {
	ID       uint      `gorm:"primaryKey" json:"id"`           // Primary key
	Type     string    `gorm:"index;not null" json:"type"`     // Transaction type: Income or Expense
	Category string    `gorm:"index;not null" json:"category"` // Free-text category label, e.g. "Food", "Rent"
	Amount   float64   `gorm:"not null" json:"amount"`         // Amount of the transaction
	Date     time.Time `gorm:"not null" json:"date"`           // Calendar date of the transaction
}
