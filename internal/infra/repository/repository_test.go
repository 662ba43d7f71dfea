//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/repository"
	"campus-reserve/internal/usecase/shared"
	"campus-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDBTX struct {
	mock.Mock
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

// errRow fails every Scan with err.
type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

var (
	uniqueViolation = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	fkViolation     = &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
	serialization   = &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
)

func TestEventRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		scanErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "no rows is not found", scanErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "driver failure", scanErr: errors.New("connection reset by peer"), expectKind: infra.KindDBFailure},
		{name: "serialization failure is a conflict", scanErr: serialization, expectKind: infra.KindConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mockDBTX)
			db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(errRow{err: tc.scanErr})

			_, err := repository.NewEventRepository(db).FindByID(ctx, uuid.New())

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			db.AssertExpectations(t)
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	festID := uuid.New()
	organizerID := "organizer-001"
	listErr := errors.New("connection reset by peer")

	testCases := []struct {
		name       string
		filter     shared.EventFilter
		expectCond string
		expectArgs []any
	}{
		{
			name:       "organizer only",
			filter:     shared.EventFilter{OrganizerID: &organizerID},
			expectCond: "WHERE organizer_id = $1 ORDER BY",
			expectArgs: []any{organizerID},
		},
		{
			name:       "fest and organizer number placeholders in order",
			filter:     shared.EventFilter{FestID: &festID, OrganizerID: &organizerID, PublishedOnly: true},
			expectCond: "WHERE fest_id = $1 AND organizer_id = $2 AND is_published ORDER BY",
			expectArgs: []any{festID, organizerID},
		},
		{
			name:       "no filter",
			filter:     shared.EventFilter{},
			expectCond: "FROM events ORDER BY",
			expectArgs: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mockDBTX)
			db.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
				return strings.Contains(sql, tc.expectCond)
			}), mock.MatchedBy(func(args []any) bool {
				return assert.ObjectsAreEqual(tc.expectArgs, args) || (len(tc.expectArgs) == 0 && len(args) == 0)
			})).Return(nil, listErr)

			_, err := repository.NewEventRepository(db).List(ctx, tc.filter)

			require.Error(t, err)
			assert.True(t, errors.Is(err, listErr))
			db.AssertExpectations(t)
		})
	}
}

func TestEventRepository_Save(t *testing.T) {
	ctx := context.Background()
	ev, err := builder.NewEventBuilder().BuildDomain()
	require.NoError(t, err)

	testCases := []struct {
		name       string
		tag        pgconn.CommandTag
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "missing row", tag: pgconn.NewCommandTag("UPDATE 0"), expectKind: infra.KindNotFound},
		{name: "counter check violated", execErr: errors.New("check constraint"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(tc.tag, tc.execErr)

			err := repository.NewEventRepository(db).Save(ctx, ev)

			if tc.expectKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	reg, err := builder.NewRegistrationBuilder().BuildDomain()
	require.NoError(t, err)

	testCases := []struct {
		name       string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "second registration is a duplicate", execErr: uniqueViolation, expectKind: infra.KindDuplicateKey},
		{name: "unknown event", execErr: fkViolation, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
				Return(pgconn.NewCommandTag("INSERT 0 1"), tc.execErr)

			err := repository.NewRegistrationRepository(db).Create(ctx, reg)

			if tc.expectKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.True(t, errors.Is(err, tc.execErr), "driver error should stay reachable")
			}
		})
	}
}

func TestOrderRepository_FindByID(t *testing.T) {
	db := new(mockDBTX)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(errRow{err: pgx.ErrNoRows})

	_, err := repository.NewOrderRepository(db).FindByID(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestMerchRepository_Delete(t *testing.T) {
	db := new(mockDBTX)
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("DELETE 0"), nil)

	err := repository.NewMerchRepository(db).Delete(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
