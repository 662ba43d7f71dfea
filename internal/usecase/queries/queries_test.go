//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/infra/memstore"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"
	"campus-reserve/tests/common/builder"
	"campus-reserve/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow       shared.UnitOfWork
	clock     *clock.MockClock
	organizer user.Requester
	student   user.Requester
}

func newFixture() *fixture {
	return &fixture{
		uow:       memstore.NewMemoryUoW(memstore.NewStore(), time.Microsecond),
		clock:     clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		organizer: builder.NewRequesterBuilder().AsOrganizer().MustBuild(),
		student:   builder.NewRequesterBuilder().MustBuild(),
	}
}

func TestEventQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	events := commands.NewEventUseCase(f.uow, f.clock)
	registrations := commands.NewRegistrationUseCase(f.uow, f.clock)
	q := queries.NewEventQueries(f.uow)

	eb := builder.NewEventBuilder().WithCapacity(4)
	eventID, err := events.CreateEvent(ctx, eb.BuildCommand(), f.organizer)
	require.NoError(t, err)
	draftID, err := events.CreateEvent(ctx, builder.NewEventBuilder().WithTitle("Draft").BuildCommand(), f.organizer)
	require.NoError(t, err)
	require.NoError(t, events.UpdateEvent(ctx, draftID, commands.UpdateEventRequest{IsPublished: new(bool)}, f.organizer))
	require.NoError(t, registrations.RegisterForEvent(ctx, eventID, f.student, builder.NewRegistrationBuilder().BuildForm()))

	t.Run("get maps every field", func(t *testing.T) {
		view, err := q.GetEvent(ctx, eventID)
		require.NoError(t, err)

		now := f.clock.Now()
		expected := &queries.EventView{
			ID:              eventID,
			Title:           eb.Title,
			Description:     eb.Description,
			Venue:           eb.Venue,
			StartsAt:        eb.StartsAt,
			Capacity:        4,
			RegisteredCount: 1,
			SeatsLeft:       3,
			OrganizerID:     f.organizer.ID(),
			OrganizerEmail:  f.organizer.Email().Value(),
			IsPublished:     true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if diff := cmp.Diff(expected, view); diff != "" {
			t.Errorf("EventView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := q.GetEvent(ctx, uuid.New())
		testutil.RequireKind(t, err, errs.ErrNotFound)
	})

	t.Run("list hides drafts unless asked", func(t *testing.T) {
		public, err := q.ListEvents(ctx, queries.EventFilters{})
		require.NoError(t, err)
		require.Len(t, public, 1)
		assert.Equal(t, eventID, public[0].ID)

		all, err := q.ListEvents(ctx, queries.EventFilters{IncludeDrafts: true})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("list by organizer", func(t *testing.T) {
		other := builder.NewRequesterBuilder().AsOrganizer().WithID("organizer-002").MustBuild()
		otherID, err := events.CreateEvent(ctx, builder.NewEventBuilder().WithTitle("Robotics Expo").BuildCommand(), other)
		require.NoError(t, err)

		ownerID := f.organizer.ID()
		own, err := q.ListEvents(ctx, queries.EventFilters{OrganizerID: &ownerID, IncludeDrafts: true})
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(own))
		for _, v := range own {
			assert.Equal(t, ownerID, v.OrganizerID)
			ids = append(ids, v.ID)
		}
		assert.ElementsMatch(t, []uuid.UUID{eventID, draftID}, ids)

		ownPublic, err := q.ListEvents(ctx, queries.EventFilters{OrganizerID: &ownerID})
		require.NoError(t, err)
		require.Len(t, ownPublic, 1)
		assert.Equal(t, eventID, ownPublic[0].ID)

		otherOwnerID := other.ID()
		theirs, err := q.ListEvents(ctx, queries.EventFilters{OrganizerID: &otherOwnerID, IncludeDrafts: true})
		require.NoError(t, err)
		require.Len(t, theirs, 1)
		assert.Equal(t, otherID, theirs[0].ID)

		nobody := "organizer-999"
		none, err := q.ListEvents(ctx, queries.EventFilters{OrganizerID: &nobody, IncludeDrafts: true})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("registrations", func(t *testing.T) {
		regs, err := q.ListRegistrations(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, regs, 1)
		assert.Equal(t, f.student.ID(), regs[0].RequesterID)
		assert.Equal(t, "CS2024-117", regs[0].StudentID)

		_, err = q.ListRegistrations(ctx, uuid.New())
		testutil.RequireKind(t, err, errs.ErrNotFound)
	})

	t.Run("my registration", func(t *testing.T) {
		mine, err := q.GetMyRegistration(ctx, eventID, f.student)
		require.NoError(t, err)
		assert.Equal(t, eventID, mine.EventID)
		assert.Equal(t, f.student.Email().Value(), mine.Email)

		_, err = q.GetMyRegistration(ctx, eventID, f.organizer)
		testutil.RequireKind(t, err, errs.ErrNotFound)

		_, err = q.GetMyRegistration(ctx, eventID, user.Anonymous())
		testutil.RequireKind(t, err, errs.ErrUnauthenticated)
	})
}

func TestFestQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	fests := commands.NewFestUseCase(f.uow, f.clock)
	events := commands.NewEventUseCase(f.uow, f.clock)
	q := queries.NewFestQueries(f.uow)

	fb := builder.NewFestBuilder()
	festID, err := fests.CreateFest(ctx, fb.BuildCommand(), f.organizer)
	require.NoError(t, err)
	_, err = fests.AddFestEvent(ctx, festID, builder.NewEventBuilder().WithTitle("Hackathon").BuildCommand(), f.organizer)
	require.NoError(t, err)
	_, err = events.CreateEvent(ctx, builder.NewEventBuilder().WithTitle("Standalone").BuildCommand(), f.organizer)
	require.NoError(t, err)

	view, err := q.GetFest(ctx, festID)
	require.NoError(t, err)
	assert.Equal(t, fb.Name, view.Name)
	assert.Equal(t, fb.EndsAt, view.EndsAt)
	assert.Equal(t, f.organizer.ID(), view.CreatedBy)

	list, err := q.ListFests(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	festEvents, err := q.ListFestEvents(ctx, festID)
	require.NoError(t, err)
	require.Len(t, festEvents, 1)
	assert.Equal(t, "Hackathon", festEvents[0].Title)
	require.NotNil(t, festEvents[0].FestID)
	assert.Equal(t, festID, *festEvents[0].FestID)

	_, err = q.ListFestEvents(ctx, uuid.New())
	testutil.RequireKind(t, err, errs.ErrNotFound)
}

func TestMerchQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	merchCmds := commands.NewMerchUseCase(f.uow, f.clock)
	q := queries.NewMerchQueries(f.uow)

	merchID, err := merchCmds.CreateMerchItem(ctx, builder.NewMerchBuilder().BuildCommand(), f.organizer)
	require.NoError(t, err)

	view, err := q.GetMerch(ctx, merchID)
	require.NoError(t, err)
	expectedSizes := []queries.SizeView{
		{Size: "S", Capacity: 5, Available: 5},
		{Size: "M", Capacity: 10, Available: 10},
		{Size: "L", Capacity: 3, Available: 3},
	}
	if diff := cmp.Diff(expectedSizes, view.Sizes); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 18, view.Stock)
	assert.Equal(t, f.organizer.Email().Value(), view.CreatedByEmail)

	items, err := q.ListMerch(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = q.GetMerch(ctx, uuid.New())
	testutil.RequireKind(t, err, errs.ErrNotFound)
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	merchCmds := commands.NewMerchUseCase(f.uow, f.clock)
	orders := commands.NewOrderUseCase(f.uow, f.clock)
	q := queries.NewMerchQueries(f.uow)

	merchID, err := merchCmds.CreateMerchItem(ctx,
		builder.NewMerchBuilder().WithSizes(merch.SizeSpec{Size: "M", Quantity: 10}).BuildCommand(), f.organizer)
	require.NoError(t, err)

	// Five orders a minute apart, the second one approved.
	var placed []uuid.UUID
	for i := range 5 {
		f.clock.Add(time.Minute)
		form := builder.NewOrderBuilder().WithTransactionID(fmt.Sprintf("UPI-%d", i)).BuildForm()
		id, err := orders.PlaceOrder(ctx, merchID, f.student, form)
		require.NoError(t, err)
		placed = append(placed, id)
	}
	require.NoError(t, orders.SetOrderStatus(ctx, merchID, placed[1], "approved"))

	t.Run("newest first across pages", func(t *testing.T) {
		page1, next, err := q.ListOrders(ctx, merchID, queries.OrderFilters{}, nil, 2)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, []uuid.UUID{placed[4], placed[3]}, ids(page1))

		page2, next, err := q.ListOrders(ctx, merchID, queries.OrderFilters{}, next, 2)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, []uuid.UUID{placed[2], placed[1]}, ids(page2))

		page3, next, err := q.ListOrders(ctx, merchID, queries.OrderFilters{}, next, 2)
		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, []uuid.UUID{placed[0]}, ids(page3))
	})

	t.Run("status filter", func(t *testing.T) {
		approved, next, err := q.ListOrders(ctx, merchID, queries.OrderFilters{Status: "approved"}, nil, 0)
		require.NoError(t, err)
		assert.Nil(t, next)
		require.Len(t, approved, 1)
		assert.Equal(t, placed[1], approved[0].ID)
		assert.Equal(t, "approved", approved[0].Status)
		assert.NotNil(t, approved[0].ReviewedAt)

		pending, _, err := q.ListOrders(ctx, merchID, queries.OrderFilters{Status: "pending"}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, pending, 4)

		_, _, err = q.ListOrders(ctx, merchID, queries.OrderFilters{Status: "shipped"}, nil, 0)
		testutil.RequireKind(t, err, errs.ErrInvalidStatus)
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, err := q.ListOrders(ctx, merchID, queries.OrderFilters{}, &queries.Cursor{After: "not-a-cursor"}, 2)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("unknown merch", func(t *testing.T) {
		_, _, err := q.ListOrders(ctx, uuid.New(), queries.OrderFilters{}, nil, 2)
		testutil.RequireKind(t, err, errs.ErrNotFound)
	})

	t.Run("get order", func(t *testing.T) {
		view, err := q.GetOrder(ctx, merchID, placed[0])
		require.NoError(t, err)
		assert.Equal(t, "UPI-0", view.TransactionID)
		assert.Equal(t, "pending", view.Status)
		assert.Nil(t, view.ReviewedAt)
	})
}

func ids(views []*queries.OrderView) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}
