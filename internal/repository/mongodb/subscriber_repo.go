// Package mongodb provides MongoDB-backed subscriber persistence.
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourbooking/internal/domain"
)

// subscriberFields maps API field names to document fields for filtering and sorting.
var subscriberFields = map[string]string{
	"email":     "email",
	"status":    "status",
	"createdAt": "created_at",
}

// subscriberDoc is the BSON shape of a subscriber document.
type subscriberDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *subscriberDoc) toDomain() *domain.Subscriber {
	return &domain.Subscriber{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

type subscriberRepository struct {
	collection *mongo.Collection
}

// NewSubscriberRepository returns a domain.SubscriberRepository backed by the
// subscribers collection of db. A unique index on email guards against
// duplicate subscriptions.
func NewSubscriberRepository(ctx context.Context, db *mongo.Database) (domain.SubscriberRepository, error) {
	collection := db.Collection("subscribers")
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &subscriberRepository{collection: collection}, nil
}

func (r *subscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	doc := subscriberDoc{
		ID:        primitive.NewObjectID(),
		Email:     sub.Email,
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return err
	}
	sub.ID = doc.ID.Hex()
	return nil
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var doc subscriberDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *subscriberRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *subscriberRepository) Find(ctx context.Context, filter domain.Filter, sort domain.Sort, offset, limit int) ([]*domain.Subscriber, error) {
	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.query(ctx, filterDoc(filter), opts)
}

func (r *subscriberRepository) FindAll(ctx context.Context, filter domain.Filter, sort domain.Sort) ([]*domain.Subscriber, error) {
	return r.query(ctx, filterDoc(filter), options.Find().SetSort(sortDoc(sort)))
}

func (r *subscriberRepository) Count(ctx context.Context, filter domain.Filter) (int, error) {
	n, err := r.collection.CountDocuments(ctx, filterDoc(filter))
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *subscriberRepository) query(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Subscriber, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*domain.Subscriber
	for cursor.Next(ctx) {
		var doc subscriberDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		subs = append(subs, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*domain.Subscriber{}
	}
	return subs, nil
}

// filterDoc translates allow-listed filters to a BSON query document.
func filterDoc(filter domain.Filter) bson.M {
	doc := bson.M{}
	for k, v := range filter {
		if field, ok := subscriberFields[k]; ok {
			doc[field] = v
		}
	}
	return doc
}

// sortDoc translates the sort context to a BSON sort document, defaulting to
// created_at descending.
func sortDoc(sort domain.Sort) bson.D {
	field, ok := subscriberFields[sort.Field]
	if !ok {
		field = "created_at"
	}
	dir := -1
	if sort.Order == domain.SortAsc {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}
