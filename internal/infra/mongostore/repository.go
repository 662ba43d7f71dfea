package mongostore

import (
	"context"
	"errors"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transientTransactionError = "TransientTransactionError"

// wrapErr maps driver failures onto repository error kinds. Write conflicts keep
// their label so the driver's transaction loop still sees them.
func wrapErr(msg string, err error) error {
	var labeled mongo.LabeledError
	switch {
	case mongo.IsDuplicateKeyError(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case errors.As(err, &labeled) && labeled.HasErrorLabel(transientTransactionError):
		return infra.WrapRepoErr(msg, err, infra.KindConflict)
	default:
		return infra.WrapRepoErr(msg, err, infra.KindDBFailure)
	}
}

type repositories struct {
	db *mongo.Database
}

func (r repositories) Events() shared.EventRepository {
	return eventRepository{c: r.db.Collection(collEvents)}
}

func (r repositories) Fests() shared.FestRepository {
	return festRepository{c: r.db.Collection(collFests)}
}

func (r repositories) Registrations() shared.RegistrationRepository {
	return registrationRepository{c: r.db.Collection(collRegistrations)}
}

func (r repositories) Merch() shared.MerchRepository {
	return merchRepository{c: r.db.Collection(collMerch), orders: r.db.Collection(collOrders)}
}

func (r repositories) Orders() shared.OrderRepository {
	return orderRepository{c: r.db.Collection(collOrders)}
}

// findAll decodes every document matching filter and converts it with fn.
func findAll[D any, T any](ctx context.Context, c *mongo.Collection, filter any, opts *options.FindOptions, fn func(D) (T, error)) ([]T, error) {
	cur, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr("failed to query "+c.Name(), err)
	}
	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, wrapErr("failed to decode "+c.Name(), err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := fn(d)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load "+c.Name(), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func findOne[D any, T any](ctx context.Context, c *mongo.Collection, filter any, notFound string, fn func(D) (T, error)) (T, error) {
	var (
		doc  D
		zero T
	)
	if err := c.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, infra.NewRepoErr(infra.KindNotFound, notFound)
		}
		return zero, wrapErr("failed to get from "+c.Name(), err)
	}
	v, err := fn(doc)
	if err != nil {
		return zero, infra.WrapRepoErr("failed to load "+c.Name(), err)
	}
	return v, nil
}

func replaceExisting(ctx context.Context, c *mongo.Collection, id string, doc any, notFound string) error {
	res, err := c.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return wrapErr("failed to save to "+c.Name(), err)
	}
	if res.MatchedCount == 0 {
		return infra.NewRepoErr(infra.KindNotFound, notFound)
	}
	return nil
}

func deleteExisting(ctx context.Context, c *mongo.Collection, id string, notFound string) error {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr("failed to delete from "+c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return infra.NewRepoErr(infra.KindNotFound, notFound)
	}
	return nil
}

type eventRepository struct{ c *mongo.Collection }

func (r eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return findOne(ctx, r.c, bson.M{"_id": id.String()}, "event not found", eventDoc.toDomain)
}

func (r eventRepository) List(ctx context.Context, filter shared.EventFilter) ([]*event.Event, error) {
	q := bson.M{}
	if filter.FestID != nil {
		q["fest_id"] = filter.FestID.String()
	}
	if filter.PublishedOnly {
		q["is_published"] = true
	}
	if filter.OrganizerID != nil {
		q["organizer_id"] = *filter.OrganizerID
	}
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}, {Key: "_id", Value: 1}})
	return findAll(ctx, r.c, q, opts, eventDoc.toDomain)
}

func (r eventRepository) Create(ctx context.Context, e *event.Event) error {
	if _, err := r.c.InsertOne(ctx, toEventDoc(e)); err != nil {
		return wrapErr("failed to create event", err)
	}
	return nil
}

func (r eventRepository) Save(ctx context.Context, e *event.Event) error {
	return replaceExisting(ctx, r.c, e.ID().String(), toEventDoc(e), "event not found")
}

func (r eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteExisting(ctx, r.c, id.String(), "event not found")
}

type festRepository struct{ c *mongo.Collection }

func (r festRepository) FindByID(ctx context.Context, id uuid.UUID) (*fest.Fest, error) {
	return findOne(ctx, r.c, bson.M{"_id": id.String()}, "fest not found", festDoc.toDomain)
}

func (r festRepository) List(ctx context.Context) ([]*fest.Fest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}, {Key: "_id", Value: 1}})
	return findAll(ctx, r.c, bson.M{}, opts, festDoc.toDomain)
}

func (r festRepository) Create(ctx context.Context, f *fest.Fest) error {
	if _, err := r.c.InsertOne(ctx, toFestDoc(f)); err != nil {
		return wrapErr("failed to create fest", err)
	}
	return nil
}

func (r festRepository) Save(ctx context.Context, f *fest.Fest) error {
	return replaceExisting(ctx, r.c, f.ID().String(), toFestDoc(f), "fest not found")
}

type registrationRepository struct{ c *mongo.Collection }

func (r registrationRepository) Find(ctx context.Context, eventID uuid.UUID, requesterID string) (*registration.Registration, error) {
	return findOne(ctx, r.c, bson.M{"_id": registrationKey(eventID, requesterID)}, "registration not found", registrationDoc.toDomain)
}

func (r registrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*registration.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: 1}, {Key: "_id", Value: 1}})
	return findAll(ctx, r.c, bson.M{"event_id": eventID.String()}, opts, registrationDoc.toDomain)
}

func (r registrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	if _, err := r.c.InsertOne(ctx, toRegistrationDoc(reg)); err != nil {
		return wrapErr("failed to create registration", err)
	}
	return nil
}

func (r registrationRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.c.DeleteMany(ctx, bson.M{"event_id": eventID.String()}); err != nil {
		return wrapErr("failed to delete registrations", err)
	}
	return nil
}

type merchRepository struct {
	c      *mongo.Collection
	orders *mongo.Collection
}

func (r merchRepository) FindByID(ctx context.Context, id uuid.UUID) (*merch.Item, error) {
	return findOne(ctx, r.c, bson.M{"_id": id.String()}, "merch item not found", merchDoc.toDomain)
}

func (r merchRepository) List(ctx context.Context) ([]*merch.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	return findAll(ctx, r.c, bson.M{}, opts, merchDoc.toDomain)
}

func (r merchRepository) Create(ctx context.Context, item *merch.Item) error {
	if _, err := r.c.InsertOne(ctx, toMerchDoc(item)); err != nil {
		return wrapErr("failed to create merch item", err)
	}
	return nil
}

func (r merchRepository) Save(ctx context.Context, item *merch.Item) error {
	return replaceExisting(ctx, r.c, item.ID().String(), toMerchDoc(item), "merch item not found")
}

// Delete also drops the item's orders; outside a transaction the two deletes
// are not atomic, which leaves at worst unreachable orders behind.
func (r merchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := deleteExisting(ctx, r.c, id.String(), "merch item not found"); err != nil {
		return err
	}
	if _, err := r.orders.DeleteMany(ctx, bson.M{"merch_id": id.String()}); err != nil {
		return wrapErr("failed to delete merch orders", err)
	}
	return nil
}

type orderRepository struct{ c *mongo.Collection }

func (r orderRepository) FindByID(ctx context.Context, merchID, orderID uuid.UUID) (*order.Order, error) {
	filter := bson.M{"_id": orderID.String(), "merch_id": merchID.String()}
	return findOne(ctx, r.c, filter, "order not found", orderDoc.toDomain)
}

func (r orderRepository) ListByMerch(ctx context.Context, merchID uuid.UUID) ([]*order.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	return findAll(ctx, r.c, bson.M{"merch_id": merchID.String()}, opts, orderDoc.toDomain)
}

func (r orderRepository) Create(ctx context.Context, o *order.Order) error {
	if _, err := r.c.InsertOne(ctx, toOrderDoc(o)); err != nil {
		return wrapErr("failed to create order", err)
	}
	return nil
}

func (r orderRepository) Save(ctx context.Context, o *order.Order) error {
	return replaceExisting(ctx, r.c, o.ID().String(), toOrderDoc(o), "order not found")
}
