package auditrepo

import (
	"context"

	"spacehub/database"
	"spacehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuditRepository interface {
	Record(ctx context.Context, event models.AuditEvent) (string, error)
	List(ctx context.Context, severity string, limit int64) ([]models.AuditEvent, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns a new AuditRepository instance using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	return &mongoAuditRepo{
		coll: database.DB().Collection("audit_events"),
	}
}
