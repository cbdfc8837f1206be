package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/events"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

func TestCreateOrderRequiresLines(t *testing.T) {
	svc := NewOrderService(events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), nil, CreateOrderInput{})
	if err == nil {
		t.Fatal("order without lines accepted")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", domainErr.Code)
	}
}

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to domain.OrderStatus
		want     bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusPreparing, true},
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPending, domain.OrderStatusServed, false},
		{domain.OrderStatusPending, domain.OrderStatusPaid, false},
		{domain.OrderStatusPreparing, domain.OrderStatusServed, true},
		{domain.OrderStatusPreparing, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPreparing, domain.OrderStatusPaid, false},
		{domain.OrderStatusServed, domain.OrderStatusPaid, true},
		{domain.OrderStatusServed, domain.OrderStatusCancelled, false},
		{domain.OrderStatusPaid, domain.OrderStatusPending, false},
		{domain.OrderStatusCancelled, domain.OrderStatusPending, false},
	}
	for _, tc := range cases {
		if got := transitionAllowed(tc.from, tc.to); got != tc.want {
			t.Errorf("transitionAllowed(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
