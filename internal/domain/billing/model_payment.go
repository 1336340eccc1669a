package billing

import "time"

// PaymentRecord is one row of a user's payment history.
type PaymentRecord struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;index:idx_payment_records_user_id"`
	AmountCents int64
	Status      string
	CreatedAt   time.Time
}
