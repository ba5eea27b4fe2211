package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/OnteruYallaiah21/StrcuctIq/gen/ent"
	"github.com/OnteruYallaiah21/StrcuctIq/gen/ent/receipt"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/utils"
)

type ReceiptRepository interface {
	CreateFromRecord(ctx context.Context, rec *entity.Receipt) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) CreateFromRecord(ctx context.Context, rec *entity.Receipt) (*entity.Receipt, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin transaction")
	}

	builder := tx.Receipt.Create().
		SetStoreName(rec.StoreName).
		SetNillableTxDate(rec.Date).
		SetNillablePurchaseTime(rec.PurchaseTime).
		SetNillableSubtotal(utils.FloatPtrFromDec(rec.Subtotal)).
		SetNillableTax(utils.FloatPtrFromDec(rec.Tax)).
		SetNillableTotal(utils.FloatPtrFromDec(rec.Total)).
		SetConfidence(rec.Confidence).
		SetExtractionMethod(rec.Method)
	if rec.PaymentMethod != "" {
		builder = builder.SetPaymentMethod(rec.PaymentMethod)
	}
	if rec.Cashier != "" {
		builder = builder.SetCashier(rec.Cashier)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create receipt", "store_name", rec.StoreName, "error", err)
		return nil, common.WrapError(err, "create receipt")
	}

	if len(rec.Items) > 0 {
		bulk := make([]*ent.ReceiptItemCreate, len(rec.Items))
		for i, it := range rec.Items {
			bulk[i] = tx.ReceiptItem.Create().
				SetReceiptID(row.ID).
				SetName(it.Name).
				SetPrice(it.Price.InexactFloat64()).
				SetPosition(i)
		}
		if _, err := tx.ReceiptItem.CreateBulk(bulk...).Save(ctx); err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create receipt items", "receipt_id", row.ID, "error", err)
			return nil, common.WrapError(err, "create receipt items")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit receipt")
	}

	saved := utils.ToReceipt(row)
	saved.Items = rec.Items
	return saved, nil
}

func (r *receiptRepository) ListReceipts(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query().WithItems()
	if fromDate != nil {
		q = q.Where(receipt.TxDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.TxDateLTE(*toDate))
	}
	recs, err := q.Order(receipt.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Query().
		Where(receipt.ID(id)).
		WithItems().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("RECEIPT_NOT_FOUND", "receipt does not exist", common.ErrNotFound)
		}
		r.logger.Error("failed to get receipt", "receipt_id", id, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}
