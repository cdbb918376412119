package usecase

import (
	"context"
	"encoding/json"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

type fakeSubmitter struct {
	calls int
	last  *domain.Order
	token string
	id    string
	err   error
}

func (f *fakeSubmitter) CreateOrder(_ context.Context, o *domain.Order, token string) (string, error) {
	f.calls++
	f.last = o
	f.token = token
	return f.id, f.err
}

type fakeAuth struct {
	session  *domain.Session
	loginErr error
	regErr   error
	validErr   error
	validCalls int
	lastCred   domain.Credentials
}

func (f *fakeAuth) Login(_ context.Context, c domain.Credentials) (*domain.Session, error) {
	f.lastCred = c
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuth) Register(_ context.Context, c domain.Credentials) error {
	f.lastCred = c
	return f.regErr
}

func (f *fakeAuth) ValidateToken(context.Context, string) error {
	f.validCalls++
	return f.validErr
}

type fakeSource struct {
	name      string
	recs      []json.RawMessage
	err       error
	calls     int
	token     string
	protected bool
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) RequiresToken() bool { return f.protected }

func (f *fakeSource) FetchOrders(_ context.Context, token string) ([]json.RawMessage, error) {
	f.calls++
	f.token = token
	return f.recs, f.err
}

type fakeUpdater struct {
	calls  int
	id     string
	status domain.OrderStatus
	token  string
	err    error
}

func (f *fakeUpdater) UpdateOrderStatus(_ context.Context, id string, st domain.OrderStatus, token string) error {
	f.calls++
	f.id, f.status, f.token = id, st, token
	return f.err
}

type fakeCatalog struct {
	name  string
	list  []domain.Product
	err   error
	calls int
}

func (f *fakeCatalog) Name() string { return f.name }

func (f *fakeCatalog) Products(context.Context) ([]domain.Product, error) {
	f.calls++
	return f.list, f.err
}

func raws(ss ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(ss))
	for i, s := range ss {
		out[i] = json.RawMessage(s)
	}
	return out
}
