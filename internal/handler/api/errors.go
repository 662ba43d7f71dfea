package api

import (
	"net/http"

	"campus-reserve/internal/handler/httperr"
	"campus-reserve/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var statusByKind = []struct {
	kind   error
	status int
}{
	{errs.ErrUnauthenticated, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrAlreadyRegistered, http.StatusConflict},
	{errs.ErrResourceFull, http.StatusConflict},
	{errs.ErrOutOfStock, http.StatusConflict},
	{errs.ErrAlreadyProcessed, http.StatusConflict},
	{errs.ErrCapacityBelowRegistered, http.StatusConflict},
	{errs.ErrInvalidSize, http.StatusBadRequest},
	{errs.ErrInvalidStatus, http.StatusBadRequest},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity},
}

// abortWithUsecaseError answers with the stable message of the failure kind.
// Validation failures also carry the specific reason as detail.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range statusByKind {
		if !errs.Is(err, m.kind) {
			continue
		}
		var detail any
		if m.status == http.StatusUnprocessableEntity {
			detail = err.Error()
		}
		httperr.AbortWithError(c, m.status, err, m.kind.Error(), detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func abortInvalidQuery(c *gin.Context, err error, name string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
}
