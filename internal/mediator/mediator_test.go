package mediator

import (
	"context"
	"errors"
	"testing"
)

type pingRequest struct{ Value int }

func (pingRequest) RequestName() string { return "test.ping" }

type orphanRequest struct{}

func (orphanRequest) RequestName() string { return "test.orphan" }

func TestSend_DispatchesToRegisteredHandler(t *testing.T) {
	m := New()

	calls := 0
	err := Register(m, func(_ context.Context, req pingRequest) (any, error) {
		calls++
		return req.Value * 2, nil
	})
	if err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}

	result, err := m.Send(context.Background(), pingRequest{Value: 21})
	if err != nil {
		t.Fatalf("unexpected send error: %v", err)
	}
	if result != 42 {
		t.Errorf("expected 42, got %v", result)
	}
	if calls != 1 {
		t.Errorf("expected handler to be invoked exactly once, got %d", calls)
	}
}

func TestSend_NoHandlerRegistered(t *testing.T) {
	m := New()

	_, err := m.Send(context.Background(), orphanRequest{})
	if !errors.Is(err, ErrNoHandler) {
		t.Errorf("expected ErrNoHandler, got %v", err)
	}
}

func TestRegister_DuplicateFails(t *testing.T) {
	m := New()

	handler := func(_ context.Context, _ pingRequest) (any, error) { return nil, nil }
	if err := Register(m, handler); err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}
	if err := Register(m, handler); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestSend_HandlerErrorPropagates(t *testing.T) {
	m := New()

	wantErr := errors.New("store failure")
	if err := Register(m, func(_ context.Context, _ pingRequest) (any, error) {
		return nil, wantErr
	}); err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}

	_, err := m.Send(context.Background(), pingRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected handler error to propagate, got %v", err)
	}
}
