package models

import (
	"encoding/json"
	"time"
)

type ActivityAction string

const (
	ActionCreate ActivityAction = "create"
	ActionUpdate ActivityAction = "update"
	ActionDelete ActivityAction = "delete"
)

// ActivityLog mirrors the activity_logs table. Append-only; no route writes it yet.
type ActivityLog struct {
	ID          string          `json:"id"`
	Action      ActivityAction  `json:"action"`
	EntityType  string          `json:"entityType"` // task | user
	EntityID    string          `json:"entityId"`
	UserID      string          `json:"userId"`
	Changes     json.RawMessage `json:"changes"`
	Description string          `json:"description"`
	IPAddress   string          `json:"ipAddress,omitempty"`
	UserAgent   string          `json:"userAgent,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
