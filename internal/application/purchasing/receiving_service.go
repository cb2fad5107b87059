package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// maxReceivingAttempts bounds the retry loop for transient storage
// contention during the receiving transaction.
const maxReceivingAttempts = 5

// ReceivingService handles the goods receipt pipeline: GRN creation plus,
// for received notes, the stock increments, the ledger posting, and the
// rolling cost/price propagation.
type ReceivingService struct {
	orderRepo       purchasing.PurchaseOrderRepository
	noteRepo        purchasing.GoodReceiptNoteRepository
	businessDayRepo finance.BusinessDayRepository
	txScope         TransactionScope
	logger          *zap.Logger
}

// NewReceivingService creates a new ReceivingService
func NewReceivingService(
	orderRepo purchasing.PurchaseOrderRepository,
	noteRepo purchasing.GoodReceiptNoteRepository,
	businessDayRepo finance.BusinessDayRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *ReceivingService {
	return &ReceivingService{
		orderRepo:       orderRepo,
		noteRepo:        noteRepo,
		businessDayRepo: businessDayRepo,
		txScope:         txScope,
		logger:          logger,
	}
}

// ReceiveGoods records a goods receipt note against a purchase order.
//
// When the note status is Received it additionally, in one transaction:
// flips the purchase order to Received, posts an inventory debit to the
// ledger for the order total, records the purchase transaction, increments
// (or creates) the stock row for every accepted line, and upserts the
// rolling cost and selling price per line.
//
// Receiving against a purchase order that is already Received, Paid, or
// Cancelled is rejected. The status re-check happens on a row-locked read
// inside the transaction, so two concurrent receipts for the same order
// cannot both post their side effects.
func (s *ReceivingService) ReceiveGoods(ctx context.Context, req ReceiveGoodsRequest) (*GRNResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_RECEIPT", "Goods receipt must have at least one line item")
	}

	status := purchasing.GRNStatus(req.Status)
	if req.Status == "" {
		status = purchasing.GRNStatusReceived
	}

	// Preconditions outside the transaction: cheap rejections first. The
	// purchase order status is re-checked under a row lock inside the
	// transaction; the business day gate is advisory here and final once
	// the transaction commits in the same request.
	order, err := s.orderRepo.FindByID(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanReceive() {
		return nil, alreadyReceivedError(order)
	}
	if err := s.checkBusinessDay(ctx, req.StoreID, req.ReceivedDate); err != nil {
		return nil, err
	}

	var response *GRNResponse
	var lastErr error
	for attempt := 1; attempt <= maxReceivingAttempts; attempt++ {
		response, lastErr = s.receiveOnce(ctx, req, status)
		if lastErr == nil {
			return response, nil
		}
		if !shared.IsTxConflict(lastErr) {
			return nil, lastErr
		}
		s.logger.Warn("goods receipt hit storage contention, retrying",
			zap.String("purchase_order_id", req.PurchaseOrderID.String()),
			zap.Int("attempt", attempt))
	}
	return nil, lastErr
}

func (s *ReceivingService) receiveOnce(ctx context.Context, req ReceiveGoodsRequest, status purchasing.GRNStatus) (*GRNResponse, error) {
	note, err := purchasing.NewGoodReceiptNote(req.NoteNumber, req.PurchaseOrderID, req.StoreID, req.ReceivedDate, status)
	if err != nil {
		return nil, err
	}
	note.Reference = req.Reference
	for _, line := range req.Items {
		if _, err := note.AddItem(purchasing.GRNItemInput{
			ItemID:           line.ItemID,
			UnitID:           line.UnitID,
			OrderedQuantity:  line.OrderedQuantity,
			ReceivedQuantity: line.ReceivedQuantity,
			AcceptedQuantity: line.AcceptedQuantity,
			RejectedQuantity: line.RejectedQuantity,
			UnitPrice:        line.UnitPrice,
			SellingPrice:     line.SellingPrice,
			Condition:        purchasing.ItemCondition(line.Condition),
		}); err != nil {
			return nil, err
		}
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Row-locked re-read: the authoritative double-receipt guard.
		order, err := repos.PurchaseOrders().FindByIDForUpdate(ctx, req.PurchaseOrderID)
		if err != nil {
			return err
		}
		if note.IsReceived() {
			if err := order.MarkReceived(); err != nil {
				return err
			}
		}

		if err := repos.Notes().Create(ctx, note); err != nil {
			return err
		}
		if !note.IsReceived() {
			return nil
		}

		if err := repos.PurchaseOrders().UpdateStatus(ctx, order.ID, order.Status); err != nil {
			return err
		}
		if err := s.postLedger(ctx, repos, order); err != nil {
			return err
		}
		return s.applyStockAndPricing(ctx, repos, note)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("goods receipt recorded",
		zap.String("note_id", note.ID.String()),
		zap.String("note_number", note.NoteNumber),
		zap.String("purchase_order_id", note.PurchaseOrderID.String()),
		zap.String("status", string(note.Status)))

	response := ToGRNResponse(note)
	return &response, nil
}

// postLedger debits the Inventory account for the purchase order total and
// records the purchase transaction. A missing Inventory account is a server
// misconfiguration, not a client error, and rolls back the whole receipt.
func (s *ReceivingService) postLedger(ctx context.Context, repos TransactionalRepositories, order *purchasing.PurchaseOrder) error {
	account, err := repos.Accounts().FindByName(ctx, finance.InventoryAccountName)
	if err != nil || account == nil {
		return fmt.Errorf("inventory account %q is not configured: %w", finance.InventoryAccountName, err)
	}

	sourceID := order.ID
	entry, err := finance.NewDebitEntry(account.ID, order.TotalAmount, finance.LedgerSourcePurchase, &sourceID,
		fmt.Sprintf("Goods received against purchase order %s", order.OrderNumber))
	if err != nil {
		return err
	}
	if err := repos.Ledger().Create(ctx, entry); err != nil {
		return err
	}

	posting, err := finance.NewPurchaseTransaction(order.ID, entry.ID, order.TotalAmount)
	if err != nil {
		return err
	}
	return repos.PurchaseTransactions().Create(ctx, posting)
}

// applyStockAndPricing increments stock for accepted quantities and rolls
// the latest cost and selling price forward, per line.
func (s *ReceivingService) applyStockAndPricing(ctx context.Context, repos TransactionalRepositories, note *purchasing.GoodReceiptNote) error {
	for i := range note.Items {
		line := &note.Items[i]

		if line.AcceptedQuantity.IsPositive() {
			stock, err := repos.Stocks().GetOrCreate(ctx, line.ItemID, note.StoreID)
			if err != nil {
				return err
			}
			if err := repos.ItemStocks().IncrementQuantity(ctx, stock.ID, line.AcceptedQuantity); err != nil {
				return err
			}
		}

		cost, err := purchasing.NewItemCost(line.ItemID, note.StoreID, line.UnitID, line.UnitPrice)
		if err != nil {
			return err
		}
		if err := repos.ItemCosts().Upsert(ctx, cost); err != nil {
			return err
		}

		if line.SellingPrice.IsPositive() {
			price, err := purchasing.NewItemPrice(line.ItemID, note.StoreID, line.UnitID, line.SellingPrice)
			if err != nil {
				return err
			}
			if err := repos.ItemPrices().Upsert(ctx, price); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetByID retrieves a goods receipt note by ID
func (s *ReceivingService) GetByID(ctx context.Context, noteID uuid.UUID) (*GRNResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	response := ToGRNResponse(note)
	return &response, nil
}

// ListByPurchaseOrder retrieves all notes recorded against a purchase order
func (s *ReceivingService) ListByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]GRNResponse, error) {
	notes, err := s.noteRepo.FindByPurchaseOrder(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	responses := make([]GRNResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, ToGRNResponse(&notes[i]))
	}
	return responses, nil
}

func (s *ReceivingService) checkBusinessDay(ctx context.Context, storeID uuid.UUID, date time.Time) error {
	day, err := s.businessDayRepo.FindByStoreAndDate(ctx, storeID, date)
	if err != nil || day == nil {
		return shared.NewDomainErrorWithDetails(shared.ErrDayClosed.Code,
			"No open business day for this store and date",
			map[string]any{"store_id": storeID.String(), "date": date.Format("2006-01-02")})
	}
	if day.Locked {
		return shared.ErrDayLocked
	}
	if !day.IsOpen() {
		return shared.ErrDayClosed
	}
	return nil
}

func alreadyReceivedError(order *purchasing.PurchaseOrder) error {
	return shared.NewDomainErrorWithDetails("PO_ALREADY_RECEIVED",
		fmt.Sprintf("Purchase order %s cannot be received in status %s", order.OrderNumber, order.Status),
		map[string]any{"order_number": order.OrderNumber, "status": order.Status.String()})
}
