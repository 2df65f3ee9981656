package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotelhub/booking-system/internal/core/ports"
)

const auditCollection = "reservation_audit"

// AuditRepository implements ports.ReservationAuditLog using MongoDB.
// Entries are append-only; nothing ever updates or removes them.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) collection() *mongo.Collection {
	return r.db.Collection(auditCollection)
}

type auditDoc struct {
	ReservationID uint      `bson:"reservation_id"`
	Field         string    `bson:"field"`
	From          string    `bson:"from"`
	To            string    `bson:"to"`
	ActorID       uint      `bson:"actor_id"`
	ActorRole     string    `bson:"actor_role"`
	Timestamp     time.Time `bson:"timestamp"`
	RecordedAt    time.Time `bson:"recorded_at"`
}

func (r *AuditRepository) Record(ctx context.Context, entry ports.AuditEntry) error {
	doc := auditDoc{
		ReservationID: entry.ReservationID,
		Field:         entry.Field,
		From:          entry.From,
		To:            entry.To,
		ActorID:       entry.ActorID,
		ActorRole:     entry.ActorRole,
		Timestamp:     entry.Timestamp.UTC(),
		RecordedAt:    time.Now().UTC(),
	}

	if _, err := r.collection().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListByReservation(ctx context.Context, reservationID uint) ([]ports.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.collection().Find(ctx, bson.M{"reservation_id": reservationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []ports.AuditEntry
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, ports.AuditEntry{
			ReservationID: doc.ReservationID,
			Field:         doc.Field,
			From:          doc.From,
			To:            doc.To,
			ActorID:       doc.ActorID,
			ActorRole:     doc.ActorRole,
			Timestamp:     doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
