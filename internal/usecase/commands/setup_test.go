//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/infra/memstore"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/shared"
	"campus-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture wires every command against a fresh in-memory store.
type fixture struct {
	uow           shared.UnitOfWork
	clock         *clock.MockClock
	events        commands.EventCommands
	fests         commands.FestCommands
	registrations commands.RegistrationCommands
	merch         commands.MerchCommands
	orders        commands.OrderCommands
	organizer     user.Requester
	student       user.Requester
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	uow := memstore.NewMemoryUoW(memstore.NewStore(), time.Microsecond)
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return &fixture{
		uow:           uow,
		clock:         clk,
		events:        commands.NewEventUseCase(uow, clk),
		fests:         commands.NewFestUseCase(uow, clk),
		registrations: commands.NewRegistrationUseCase(uow, clk),
		merch:         commands.NewMerchUseCase(uow, clk),
		orders:        commands.NewOrderUseCase(uow, clk),
		organizer:     builder.NewRequesterBuilder().AsOrganizer().MustBuild(),
		student:       builder.NewRequesterBuilder().MustBuild(),
	}
}

func student(n int) user.Requester {
	return builder.NewRequesterBuilder().
		WithID(fmt.Sprintf("student-%03d", n)).
		WithEmail(fmt.Sprintf("student%03d@campus.example.edu", n)).
		MustBuild()
}

func (f *fixture) createEvent(t *testing.T, capacity int) uuid.UUID {
	t.Helper()
	id, err := f.events.CreateEvent(context.Background(), builder.NewEventBuilder().WithCapacity(capacity).BuildCommand(), f.organizer)
	require.NoError(t, err)
	return id
}

func (f *fixture) registeredCount(t *testing.T, eventID uuid.UUID) int {
	t.Helper()
	ev, err := f.uow.Repositories().Events().FindByID(context.Background(), eventID)
	require.NoError(t, err)
	return ev.RegisteredCount()
}

func (f *fixture) registrationCount(t *testing.T, eventID uuid.UUID) int {
	t.Helper()
	regs, err := f.uow.Repositories().Registrations().ListByEvent(context.Background(), eventID)
	require.NoError(t, err)
	return len(regs)
}
