package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/danielmaina/pension-ledger/internal/domain/entity"
	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) (model.Transaction, error) {
	metadata, err := json.Marshal(transaction.Metadata)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: failed to encode metadata: %s", errs.ErrInternalServer, err.Error())
	}

	var checkoutID *string
	if transaction.CheckoutRequestID != "" {
		id := transaction.CheckoutRequestID
		checkoutID = &id
	}

	return model.Transaction{
		ID:                transaction.ID,
		TransactionID:     transaction.TransactionID,
		UserID:            transaction.UserID,
		AccountID:         transaction.AccountID,
		Kind:              string(transaction.Kind),
		Status:            string(transaction.Status),
		Amount:            transaction.Amount,
		AmountCents:       transaction.AmountCents,
		Description:       transaction.Description,
		Metadata:          string(metadata),
		CheckoutRequestID: checkoutID,
		GatewayReference:  transaction.GatewayReference,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
		ProcessedAt:       transaction.ProcessedAt,
	}, nil
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) (*entity.Transaction, error) {
	metadata := map[string]string{}
	if transactionModel.Metadata != "" {
		if err := json.Unmarshal([]byte(transactionModel.Metadata), &metadata); err != nil {
			return nil, fmt.Errorf("%w: failed to decode metadata for transaction %s: %s",
				errs.ErrInternalServer, transactionModel.TransactionID, err.Error())
		}
	}

	checkoutID := ""
	if transactionModel.CheckoutRequestID != nil {
		checkoutID = *transactionModel.CheckoutRequestID
	}

	return &entity.Transaction{
		ID:                transactionModel.ID,
		TransactionID:     transactionModel.TransactionID,
		UserID:            transactionModel.UserID,
		AccountID:         transactionModel.AccountID,
		Kind:              entity.TransactionKind(transactionModel.Kind),
		Status:            entity.TransactionStatus(transactionModel.Status),
		Amount:            transactionModel.Amount,
		AmountCents:       transactionModel.AmountCents,
		Description:       transactionModel.Description,
		Metadata:          metadata,
		CheckoutRequestID: checkoutID,
		GatewayReference:  transactionModel.GatewayReference,
		CreatedAt:         transactionModel.CreatedAt,
		UpdatedAt:         transactionModel.UpdatedAt,
		ProcessedAt:       transactionModel.ProcessedAt,
	}, nil
}

// Create saves a new pending transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": transaction.TransactionID,
		"kind":           transaction.Kind,
	})

	transactionModel, err := r.entityToModel(transaction)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	return nil
}

// Update persists status, gateway binding, metadata and owner changes.
// The amount columns are immutable and deliberately absent from the update set.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel, err := r.entityToModel(transaction)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("transaction_id = ?", transaction.TransactionID).
		Updates(map[string]interface{}{
			"user_id":             transactionModel.UserID,
			"status":              transactionModel.Status,
			"metadata":            transactionModel.Metadata,
			"checkout_request_id": transactionModel.CheckoutRequestID,
			"gateway_reference":   transactionModel.GatewayReference,
			"processed_at":        transactionModel.ProcessedAt,
			"updated_at":          transactionModel.UpdatedAt,
		})

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			// The unique checkout index rejected binding this reference to a
			// second transaction
			r.logger.Warn("Checkout reference already bound elsewhere", map[string]any{
				"transaction_id": transaction.TransactionID,
			})
			return errs.ErrReferenceConflict
		}
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// GetByTransactionID retrieves a transaction by its globally unique identifier
func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&transactionModel)

	if result.Error != nil {
		return nil, r.mapLookupError(result.Error, "transaction_id", transactionID)
	}

	return r.modelToEntity(&transactionModel)
}

// GetByCheckoutRequestID retrieves a transaction by its gateway checkout identifier
func (r *TransactionRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("checkout_request_id = ?", checkoutRequestID).
		First(&transactionModel)

	if result.Error != nil {
		return nil, r.mapLookupError(result.Error, "checkout_request_id", checkoutRequestID)
	}

	return r.modelToEntity(&transactionModel)
}

// ListByAccount returns an account's transactions, newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactionModels)

	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(transactionModels)
}

// ListStalePending returns pending transactions with a gateway binding
// created before the cutoff. Input for the reconciliation sweep.
func (r *TransactionRepository) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("status = ? AND checkout_request_id IS NOT NULL AND created_at < ?",
			string(entity.StatusPending), olderThan).
		Order("created_at ASC").
		Limit(limit).
		Find(&transactionModels)

	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(transactionModels)
}

func (r *TransactionRepository) modelsToEntities(transactionModels []model.Transaction) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transaction, err := r.modelToEntity(&transactionModels[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (r *TransactionRepository) mapLookupError(err error, key, value string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Transaction not found", map[string]any{key: value})
		return errs.ErrTransactionNotFound
	}
	r.logger.Error("Failed to get transaction", map[string]any{
		key:     value,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
