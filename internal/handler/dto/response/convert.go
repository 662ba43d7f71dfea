package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Responses carry ids as strings and timestamps as unix seconds.
var copyOpts = copier.Option{
	CaseSensitive: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func build[T any](from any) *T {
	to := new(T)
	// Views and responses are plain structs; a copy error here is a programming error.
	if err := copier.CopyWithOption(to, from, copyOpts); err != nil {
		panic(err)
	}
	return to
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func optionalUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
