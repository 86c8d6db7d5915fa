package models

import "time"

// Audit severities.
const (
	AuditSeverityInfo  = "info"
	AuditSeverityWarn  = "warn"
	AuditSeverityError = "error"
)

// AuditEvent records an admin action or a system incident, most importantly
// the gateway-succeeded-but-persist-failed case that needs manual
// reconciliation.
type AuditEvent struct {
	ID        string         `bson:"id" json:"id"`
	Source    string         `bson:"source" json:"source"`
	Severity  string         `bson:"severity" json:"severity"`
	Message   string         `bson:"message" json:"message"`
	Details   map[string]any `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}
