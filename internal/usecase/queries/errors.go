package queries

import (
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/errs"
)

var ErrInvalidCursor = errs.New("invalid cursor")

func lookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
