package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

const appsCollection = "Apps"

// ApplicationRepository persists job-application records in the Apps collection.
// Reads and writes on existing records always filter by _id AND user, so a
// record owned by someone else is indistinguishable from a missing one.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(appsCollection)}
}

type mongoApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"user"`
	Company     string             `bson:"company"`
	Role        string             `bson:"role"`
	Category    string             `bson:"category,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Flexibility string             `bson:"flexibility,omitempty"`
	Status      string             `bson:"status"`
	AppliedDate string             `bson:"date"`
	Link        string             `bson:"link,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (ma mongoApplication) toDomain() *domain.Application {
	return &domain.Application{
		ID:          ma.ID.Hex(),
		OwnerID:     ma.OwnerID.Hex(),
		Company:     ma.Company,
		Role:        ma.Role,
		Category:    ma.Category,
		Location:    ma.Location,
		Flexibility: ma.Flexibility,
		Status:      domain.ApplicationStatus(ma.Status),
		AppliedDate: ma.AppliedDate,
		Link:        ma.Link,
		CreatedAt:   ma.CreatedAt,
	}
}

func ownerScope(ownerID, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}
	uid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}
	return bson.M{"_id": oid, "user": uid}, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(app.OwnerID)
	if err != nil {
		return "", fmt.Errorf("invalid owner id: %w", err)
	}

	doc := mongoApplication{
		OwnerID:     uid,
		Company:     app.Company,
		Role:        app.Role,
		Category:    app.Category,
		Location:    app.Location,
		Flexibility: app.Flexibility,
		Status:      string(app.Status),
		AppliedDate: app.AppliedDate,
		Link:        app.Link,
		CreatedAt:   app.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert application: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScope(ownerID, id)
	if err != nil {
		return nil, err
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

// Update replaces the mutable fields of the record. A zero match count means
// the record is missing or foreign; both surface as ErrApplicationNotFound.
func (r *ApplicationRepository) Update(ctx context.Context, ownerID string, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScope(ownerID, app.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"company":     app.Company,
		"role":        app.Role,
		"category":    app.Category,
		"location":    app.Location,
		"flexibility": app.Flexibility,
		"status":      string(app.Status),
		"date":        app.AppliedDate,
		"link":        app.Link,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScope(ownerID, id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// List returns the owner's applications matching filter. The date field is
// text in YYYY-MM-DD form, so a lexicographic Mongo sort on it is also a
// chronological sort; _id breaks ties in insertion order.
func (r *ApplicationRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(filter.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id: %w", err)
	}

	query := bson.M{"user": uid}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find()
	switch filter.Sort {
	case ports.SortAscending:
		opts.SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	case ports.SortDescending, ports.SortNone:
		opts.SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}})
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var apps []*domain.Application
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return 0, fmt.Errorf("invalid owner id: %w", err)
	}
	return r.coll.CountDocuments(ctx, bson.M{"user": uid})
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, ownerID string, status domain.ApplicationStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return 0, fmt.Errorf("invalid owner id: %w", err)
	}
	return r.coll.CountDocuments(ctx, bson.M{"user": uid, "status": string(status)})
}

// EnsureIndexes creates the owner and owner+status indexes backing the
// list and dashboard queries.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
