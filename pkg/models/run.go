package models

import (
	"encoding/json"
	"time"
)

// MappingRun is a persisted record of one mapping request
type MappingRun struct {
	ID            string          `json:"id" db:"id"`
	TenantID      string          `json:"tenant_id" db:"tenant_id"`
	TemplateID    string          `json:"template_id" db:"template_id"`
	TotalFields   int             `json:"total_fields" db:"total_fields"`
	MappedFields  int             `json:"mapped_fields" db:"mapped_fields"`
	SkippedFields int             `json:"skipped_fields" db:"skipped_fields"`
	Report        json.RawMessage `json:"report" db:"report"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// CreateMappingRunRequest is the request to persist a mapping run
type CreateMappingRunRequest struct {
	TemplateID    string          `json:"template_id"`
	TotalFields   int             `json:"total_fields"`
	MappedFields  int             `json:"mapped_fields"`
	SkippedFields int             `json:"skipped_fields"`
	Report        json.RawMessage `json:"report"`
}
