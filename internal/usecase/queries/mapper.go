package queries

import (
	"campus-reserve/internal/domain/event"
	"campus-reserve/internal/domain/fest"
	"campus-reserve/internal/domain/merch"
	"campus-reserve/internal/domain/order"
	"campus-reserve/internal/domain/registration"
	"campus-reserve/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Entities expose state through getters; copier reads those as methods.
// Matching must stay case sensitive so unexported fields are never touched.
var copyOpts = copier.Option{CaseSensitive: true}

func copyInto(to, from any) error {
	if err := copier.CopyWithOption(to, from, copyOpts); err != nil {
		return errs.Wrap(err, "failed to build view")
	}
	return nil
}

func toEventView(e *event.Event) (*EventView, error) {
	view := &EventView{}
	if err := copyInto(view, e.Details()); err != nil {
		return nil, err
	}
	if err := copyInto(view, e); err != nil {
		return nil, err
	}
	return view, nil
}

func toFestView(f *fest.Fest) (*FestView, error) {
	view := &FestView{}
	if err := copyInto(view, f.Details()); err != nil {
		return nil, err
	}
	if err := copyInto(view, f); err != nil {
		return nil, err
	}
	return view, nil
}

func toRegistrationView(r *registration.Registration) (*RegistrationView, error) {
	view := &RegistrationView{}
	if err := copyInto(view, r); err != nil {
		return nil, err
	}
	return view, nil
}

func toMerchView(item *merch.Item) (*MerchView, error) {
	view := &MerchView{}
	if err := copyInto(view, item.Details()); err != nil {
		return nil, err
	}
	if err := copyInto(view, item); err != nil {
		return nil, err
	}
	buckets := item.Buckets()
	view.Sizes = make([]SizeView, 0, len(buckets))
	for _, b := range buckets {
		view.Sizes = append(view.Sizes, SizeView(b))
	}
	return view, nil
}

func toOrderView(o *order.Order) (*OrderView, error) {
	view := &OrderView{}
	if err := copyInto(view, o.Form()); err != nil {
		return nil, err
	}
	if err := copyInto(view, o); err != nil {
		return nil, err
	}
	view.Status = o.Status().String()
	return view, nil
}

func mapAll[T any, V any](items []T, fn func(T) (*V, error)) ([]*V, error) {
	out := make([]*V, 0, len(items))
	for _, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
