package memstore

import (
	"context"
	"sort"

	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type repositories struct {
	s session
}

func (r repositories) Events() shared.EventRepository               { return eventRepository(r) }
func (r repositories) Fests() shared.FestRepository                 { return festRepository(r) }
func (r repositories) Registrations() shared.RegistrationRepository { return registrationRepository(r) }
func (r repositories) Merch() shared.MerchRepository                { return merchRepository(r) }
func (r repositories) Orders() shared.OrderRepository               { return orderRepository(r) }

type eventRepository struct{ s session }

func (r eventRepository) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	data, ok := r.s.get(collEvents, id.String())
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	e, err := data.(eventRecord).toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load event", err)
	}
	return e, nil
}

func (r eventRepository) List(_ context.Context, filter shared.EventFilter) ([]*event.Event, error) {
	var out []*event.Event
	for _, data := range r.s.list(collEvents) {
		rec := data.(eventRecord)
		if filter.FestID != nil && (rec.FestID == nil || *rec.FestID != *filter.FestID) {
			continue
		}
		if filter.PublishedOnly && !rec.IsPublished {
			continue
		}
		if filter.OrganizerID != nil && rec.OrganizerID != *filter.OrganizerID {
			continue
		}
		e, err := rec.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load event", err)
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Details().StartsAt.Before(out[j].Details().StartsAt)
	})
	return out, nil
}

func (r eventRepository) Create(_ context.Context, e *event.Event) error {
	if _, exists := r.s.get(collEvents, e.ID().String()); exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "event already exists")
	}
	r.s.put(collEvents, e.ID().String(), toEventRecord(e))
	return nil
}

func (r eventRepository) Save(_ context.Context, e *event.Event) error {
	if _, exists := r.s.get(collEvents, e.ID().String()); !exists {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	r.s.put(collEvents, e.ID().String(), toEventRecord(e))
	return nil
}

func (r eventRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, exists := r.s.get(collEvents, id.String()); !exists {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	r.s.remove(collEvents, id.String())
	return nil
}

type festRepository struct{ s session }

func (r festRepository) FindByID(_ context.Context, id uuid.UUID) (*fest.Fest, error) {
	data, ok := r.s.get(collFests, id.String())
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "fest not found")
	}
	return data.(festRecord).toDomain(), nil
}

func (r festRepository) List(_ context.Context) ([]*fest.Fest, error) {
	var out []*fest.Fest
	for _, data := range r.s.list(collFests) {
		out = append(out, data.(festRecord).toDomain())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Details().StartsAt.Before(out[j].Details().StartsAt)
	})
	return out, nil
}

func (r festRepository) Create(_ context.Context, f *fest.Fest) error {
	if _, exists := r.s.get(collFests, f.ID().String()); exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "fest already exists")
	}
	r.s.put(collFests, f.ID().String(), toFestRecord(f))
	return nil
}

func (r festRepository) Save(_ context.Context, f *fest.Fest) error {
	if _, exists := r.s.get(collFests, f.ID().String()); !exists {
		return infra.NewRepoErr(infra.KindNotFound, "fest not found")
	}
	r.s.put(collFests, f.ID().String(), toFestRecord(f))
	return nil
}

type registrationRepository struct{ s session }

func (r registrationRepository) Find(_ context.Context, eventID uuid.UUID, requesterID string) (*registration.Registration, error) {
	data, ok := r.s.get(collRegistrations, registrationID(eventID, requesterID))
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "registration not found")
	}
	return data.(registrationRecord).toDomain(), nil
}

func (r registrationRepository) ListByEvent(_ context.Context, eventID uuid.UUID) ([]*registration.Registration, error) {
	var out []*registration.Registration
	for _, data := range r.s.list(collRegistrations) {
		rec := data.(registrationRecord)
		if rec.EventID == eventID {
			out = append(out, rec.toDomain())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RegisteredAt().Before(out[j].RegisteredAt())
	})
	return out, nil
}

func (r registrationRepository) Create(_ context.Context, reg *registration.Registration) error {
	id := registrationID(reg.EventID(), reg.RequesterID())
	if _, exists := r.s.get(collRegistrations, id); exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "registration already exists")
	}
	r.s.put(collRegistrations, id, toRegistrationRecord(reg))
	return nil
}

func (r registrationRepository) DeleteByEvent(_ context.Context, eventID uuid.UUID) error {
	for _, data := range r.s.list(collRegistrations) {
		rec := data.(registrationRecord)
		if rec.EventID == eventID {
			r.s.remove(collRegistrations, registrationID(rec.EventID, rec.RequesterID))
		}
	}
	return nil
}

type merchRepository struct{ s session }

func (r merchRepository) FindByID(_ context.Context, id uuid.UUID) (*merch.Item, error) {
	data, ok := r.s.get(collMerch, id.String())
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "merch item not found")
	}
	item, err := data.(merchRecord).toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load merch item", err)
	}
	return item, nil
}

func (r merchRepository) List(_ context.Context) ([]*merch.Item, error) {
	var out []*merch.Item
	for _, data := range r.s.list(collMerch) {
		item, err := data.(merchRecord).toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load merch item", err)
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

func (r merchRepository) Create(_ context.Context, item *merch.Item) error {
	if _, exists := r.s.get(collMerch, item.ID().String()); exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "merch item already exists")
	}
	r.s.put(collMerch, item.ID().String(), toMerchRecord(item))
	return nil
}

func (r merchRepository) Save(_ context.Context, item *merch.Item) error {
	if _, exists := r.s.get(collMerch, item.ID().String()); !exists {
		return infra.NewRepoErr(infra.KindNotFound, "merch item not found")
	}
	r.s.put(collMerch, item.ID().String(), toMerchRecord(item))
	return nil
}

func (r merchRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, exists := r.s.get(collMerch, id.String()); !exists {
		return infra.NewRepoErr(infra.KindNotFound, "merch item not found")
	}
	r.s.remove(collMerch, id.String())
	for _, data := range r.s.list(collOrders) {
		if rec := data.(orderRecord); rec.MerchID == id {
			r.s.remove(collOrders, rec.ID.String())
		}
	}
	return nil
}

type orderRepository struct{ s session }

func (r orderRepository) FindByID(_ context.Context, merchID, orderID uuid.UUID) (*order.Order, error) {
	data, ok := r.s.get(collOrders, orderID.String())
	if !ok || data.(orderRecord).MerchID != merchID {
		return nil, infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return data.(orderRecord).toDomain(), nil
}

func (r orderRepository) ListByMerch(_ context.Context, merchID uuid.UUID) ([]*order.Order, error) {
	var out []*order.Order
	for _, data := range r.s.list(collOrders) {
		rec := data.(orderRecord)
		if rec.MerchID == merchID {
			out = append(out, rec.toDomain())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

func (r orderRepository) Create(_ context.Context, o *order.Order) error {
	if _, exists := r.s.get(collOrders, o.ID().String()); exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "order already exists")
	}
	r.s.put(collOrders, o.ID().String(), toOrderRecord(o))
	return nil
}

func (r orderRepository) Save(_ context.Context, o *order.Order) error {
	if _, exists := r.s.get(collOrders, o.ID().String()); !exists {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	r.s.put(collOrders, o.ID().String(), toOrderRecord(o))
	return nil
}
