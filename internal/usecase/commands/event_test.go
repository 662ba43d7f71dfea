//go:build unit

package commands_test

import (
	"context"
	"testing"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/shared"
	"campus-reserve/tests/common/builder"
	"campus-reserve/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("organizer creates a published event", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.events.CreateEvent(ctx, builder.NewEventBuilder().BuildCommand(), f.organizer)
		require.NoError(t, err)

		ev, err := f.uow.Repositories().Events().FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 50, ev.Capacity())
		assert.Equal(t, 0, ev.RegisteredCount())
		assert.True(t, ev.IsPublished())
		assert.Equal(t, f.organizer.ID(), ev.OrganizerID())
	})

	tests := []struct {
		name      string
		requester user.Requester
		mutate    func(*builder.EventBuilder)
		kind      error
	}{
		{
			name:      "student is forbidden",
			requester: builder.NewRequesterBuilder().MustBuild(),
			kind:      errs.ErrForbidden,
		},
		{
			name:      "anonymous is unauthenticated",
			requester: user.Anonymous(),
			kind:      errs.ErrUnauthenticated,
		},
		{
			name:      "zero capacity",
			requester: builder.NewRequesterBuilder().AsOrganizer().MustBuild(),
			mutate:    func(b *builder.EventBuilder) { b.WithCapacity(0) },
			kind:      errs.ErrDomainValidation,
		},
		{
			name:      "blank title",
			requester: builder.NewRequesterBuilder().AsAdmin().MustBuild(),
			mutate:    func(b *builder.EventBuilder) { b.WithTitle(" ") },
			kind:      errs.ErrDomainValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			b := builder.NewEventBuilder()
			if tt.mutate != nil {
				b.With(tt.mutate)
			}
			_, err := f.events.CreateEvent(ctx, b.BuildCommand(), tt.requester)
			testutil.RequireKind(t, err, tt.kind)

			list, err := f.uow.Repositories().Events().List(ctx, shared.EventFilter{})
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	form := builder.NewRegistrationBuilder().BuildForm()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		f := newFixture(t)
		id := f.createEvent(t, 10)

		err := f.events.UpdateEvent(ctx, id, commands.UpdateEventRequest{Venue: ptr("Open Air Theatre")}, f.organizer)
		require.NoError(t, err)

		ev, err := f.uow.Repositories().Events().FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Open Air Theatre", ev.Details().Venue)
		assert.Equal(t, "Intro to Robotics Workshop", ev.Details().Title)
		assert.Equal(t, 10, ev.Capacity())
	})

	t.Run("capacity may shrink down to the registered count", func(t *testing.T) {
		f := newFixture(t)
		id := f.createEvent(t, 10)
		for i := range 3 {
			require.NoError(t, f.registrations.RegisterForEvent(ctx, id, student(i), form))
		}

		require.NoError(t, f.events.UpdateEvent(ctx, id, commands.UpdateEventRequest{Capacity: ptr(3)}, f.organizer))

		err := f.events.UpdateEvent(ctx, id, commands.UpdateEventRequest{Capacity: ptr(2)}, f.organizer)
		testutil.RequireKind(t, err, errs.ErrCapacityBelowRegistered)

		ev, err := f.uow.Repositories().Events().FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3, ev.Capacity())
		assert.Equal(t, 3, ev.RegisteredCount())
	})

	t.Run("unpublish", func(t *testing.T) {
		f := newFixture(t)
		id := f.createEvent(t, 10)
		require.NoError(t, f.events.UpdateEvent(ctx, id, commands.UpdateEventRequest{IsPublished: ptr(false)}, f.organizer))

		ev, err := f.uow.Repositories().Events().FindByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, ev.IsPublished())
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		f := newFixture(t)
		id := f.createEvent(t, 10)
		err := f.events.UpdateEvent(ctx, id, commands.UpdateEventRequest{Title: ptr("")}, f.organizer)
		testutil.RequireKind(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newFixture(t)
		err := f.events.UpdateEvent(ctx, uuid.New(), commands.UpdateEventRequest{Capacity: ptr(3)}, f.organizer)
		testutil.RequireKind(t, err, errs.ErrNotFound)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		f := newFixture(t)
		id := f.createEvent(t, 10)
		err := f.events.UpdateEvent(ctx, id, commands.UpdateEventRequest{Capacity: ptr(3)}, f.student)
		testutil.RequireKind(t, err, errs.ErrForbidden)
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	form := builder.NewRegistrationBuilder().BuildForm()

	f := newFixture(t)
	id := f.createEvent(t, 10)
	require.NoError(t, f.registrations.RegisterForEvent(ctx, id, f.student, form))

	require.NoError(t, f.events.DeleteEvent(ctx, id, f.organizer))

	_, err := f.uow.Repositories().Events().FindByID(ctx, id)
	require.Error(t, err)
	assert.Equal(t, 0, f.registrationCount(t, id))

	err = f.events.DeleteEvent(ctx, id, f.organizer)
	testutil.RequireKind(t, err, errs.ErrNotFound)
}
