package purchasing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPurchaseOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order, err := NewPurchaseOrder("PO-2026-0012", uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	return order
}

func TestPurchaseOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  PurchaseOrderStatus
		isValid bool
	}{
		{PurchaseOrderStatusPending, true},
		{PurchaseOrderStatusDraft, true},
		{PurchaseOrderStatusReceived, true},
		{PurchaseOrderStatusPaid, true},
		{PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatus("INVALID"), false},
		{PurchaseOrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestPurchaseOrderStatus_CanReceive(t *testing.T) {
	assert.True(t, PurchaseOrderStatusPending.CanReceive())
	assert.True(t, PurchaseOrderStatusDraft.CanReceive())
	assert.False(t, PurchaseOrderStatusReceived.CanReceive())
	assert.False(t, PurchaseOrderStatusPaid.CanReceive())
	assert.False(t, PurchaseOrderStatusCancelled.CanReceive())
}

func TestPurchaseOrder_TotalDerivedFromItems(t *testing.T) {
	order := createTestPurchaseOrder(t)

	_, err := order.AddItem(uuid.New(), decimal.NewFromInt(20), decimal.NewFromInt(150), decimal.NewFromInt(200), decimal.Zero)
	require.NoError(t, err)
	_, err = order.AddItem(uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(100), decimal.NewFromInt(130), decimal.NewFromInt(50))
	require.NoError(t, err)

	// 20*150 + 5*100 + 50 tax
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(3550)))
}

func TestPurchaseOrder_MarkReceived(t *testing.T) {
	order := createTestPurchaseOrder(t)

	err := order.MarkReceived()
	require.NoError(t, err)
	assert.Equal(t, PurchaseOrderStatusReceived, order.Status)
	assert.Equal(t, 2, order.Version)
}

func TestPurchaseOrder_MarkReceived_Twice(t *testing.T) {
	order := createTestPurchaseOrder(t)
	require.NoError(t, order.MarkReceived())

	err := order.MarkReceived()
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PO_ALREADY_RECEIVED", domainErr.Code)
	assert.Equal(t, order.OrderNumber, domainErr.Details["order_number"])
}

func TestPurchaseOrder_MarkPaid(t *testing.T) {
	order := createTestPurchaseOrder(t)

	err := order.MarkPaid()
	assert.Error(t, err, "pending order cannot be paid")

	require.NoError(t, order.MarkReceived())
	require.NoError(t, order.MarkPaid())
	assert.Equal(t, PurchaseOrderStatusPaid, order.Status)
}

func TestPurchaseOrder_Cancel(t *testing.T) {
	order := createTestPurchaseOrder(t)
	require.NoError(t, order.Cancel())
	assert.Equal(t, PurchaseOrderStatusCancelled, order.Status)

	received := createTestPurchaseOrder(t)
	require.NoError(t, received.MarkReceived())
	assert.Error(t, received.Cancel())
}

func TestNewPurchaseOrderItem_Validation(t *testing.T) {
	orderID := uuid.New()

	_, err := NewPurchaseOrderItem(orderID, uuid.Nil, decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.Zero, decimal.Zero)
	assert.Error(t, err)

	_, err = NewPurchaseOrderItem(orderID, uuid.New(), decimal.Zero, decimal.NewFromInt(1), decimal.Zero, decimal.Zero)
	assert.Error(t, err)

	_, err = NewPurchaseOrderItem(orderID, uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)
	assert.Error(t, err)
}
