package commands

import (
	"errors"

	"campus-reserve/internal/domain/capacity"
	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/errs"
)

var taxonomy = []error{
	errs.ErrUnauthenticated,
	errs.ErrForbidden,
	errs.ErrNotFound,
	errs.ErrAlreadyRegistered,
	errs.ErrResourceFull,
	errs.ErrCapacityBelowRegistered,
	errs.ErrInvalidSize,
	errs.ErrOutOfStock,
	errs.ErrAlreadyProcessed,
	errs.ErrInvalidStatus,
	errs.ErrDomainValidation,
	errs.ErrDatabaseOperationFailed,
}

var domainFailures = []struct {
	cause error
	kind  error
}{
	{event.ErrEventFull, errs.ErrResourceFull},
	{event.ErrCapacityBelowRegistered, errs.ErrCapacityBelowRegistered},
	{merch.ErrInvalidSize, errs.ErrInvalidSize},
	{merch.ErrOutOfStock, errs.ErrOutOfStock},
	{order.ErrAlreadyProcessed, errs.ErrAlreadyProcessed},
	{order.ErrInvalidDecision, errs.ErrInvalidStatus},
	{registration.ErrAnonymous, errs.ErrUnauthenticated},
	{order.ErrAnonymous, errs.ErrUnauthenticated},
}

var validationFailures = []error{
	event.ErrEmptyTitle,
	event.ErrInvalidCapacity,
	event.ErrMissingStartTime,
	fest.ErrEmptyName,
	fest.ErrInvalidPeriod,
	registration.ErrEmptyName,
	registration.ErrEmptyStudentID,
	merch.ErrEmptyName,
	merch.ErrNegativePrice,
	merch.ErrEmptySizeChart,
	merch.ErrEmptySizeLabel,
	merch.ErrDuplicateSize,
	merch.ErrSizeLabelFormat,
	merch.ErrNegativeQuantity,
	order.ErrEmptyName,
	order.ErrEmptyStudentID,
	order.ErrEmptySize,
	order.ErrEmptyTransactionID,
	capacity.ErrInvalidCapacity,
	capacity.ErrInvalidUsage,
	user.ErrInvalidEmail,
	user.ErrInvalidRole,
}

// translate marks err with the failure kind callers branch on.
// Anything that is not a known business failure becomes ErrDatabaseOperationFailed.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, taxonomy...) {
		return err
	}
	for _, f := range domainFailures {
		if errors.Is(err, f.cause) {
			return errs.Mark(err, f.kind)
		}
	}
	for _, v := range validationFailures {
		if errors.Is(err, v) {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func requireIdentity(requester user.Requester) error {
	if requester.IsAnonymous() {
		return errs.ErrUnauthenticated
	}
	return nil
}

func requireOrganizer(requester user.Requester) error {
	if err := requireIdentity(requester); err != nil {
		return err
	}
	if !requester.Role().AtLeast(user.RoleOrganizer) {
		return errs.ErrForbidden
	}
	return nil
}
