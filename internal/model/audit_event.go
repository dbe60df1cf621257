package model

import "time"

// AuditEvent records one successful mutation. Rows are written
// asynchronously by the audit worker and never read on the hot path.
type AuditEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Resource   string    `gorm:"size:32;not null;index" json:"resource"`
	Action     string    `gorm:"size:16;not null" json:"action"`
	ResourceID uint      `gorm:"not null" json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`
}
