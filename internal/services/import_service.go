package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadsearch/internal/database"
	"leadsearch/internal/models"
	"leadsearch/internal/repositories"

	"gorm.io/gorm"
)

var (
	ErrEmptyImportBatch = errors.New("import batch contains no records")
)

// ImportItemResult records the outcome of one record in a bulk import
type ImportItemResult struct {
	Index          int    `json:"index"`
	ExternalSource string `json:"externalSource"`
	ExternalID     string `json:"externalId"`
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
}

// ImportSummary reports the outcome of a bulk import batch
type ImportSummary struct {
	Total      int                `json:"total"`
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
	Details    []ImportItemResult `json:"details"`
}

// ImportService performs bulk customer imports. The whole batch, including
// the optional clear of existing rows, runs inside one transaction; each
// record is upserted under its own savepoint so a bad record rolls back only
// itself. Partial success is the normal case and is reported per item, never
// as a top-level error.
type ImportService struct {
	db           *database.DB
	customerRepo repositories.CustomerRepositoryInterface
	metrics      MetricsRecorderInterface
}

// NewImportService creates a new import service
func NewImportService(db *database.DB, customerRepo repositories.CustomerRepositoryInterface, metrics MetricsRecorderInterface) ImportServiceInterface {
	return &ImportService{
		db:           db,
		customerRepo: customerRepo,
		metrics:      metrics,
	}
}

// ImportCustomers upserts each record by its (externalSource, externalId)
// key, sequentially, collecting per-item results. When clearExisting is set,
// all existing customer rows are deleted first within the same transaction.
func (s *ImportService) ImportCustomers(ctx context.Context, customers []*models.Customer, clearExisting bool) (*ImportSummary, error) {
	if len(customers) == 0 {
		return nil, ErrEmptyImportBatch
	}

	startTime := time.Now()

	summary := &ImportSummary{
		Total:   len(customers),
		Details: make([]ImportItemResult, 0, len(customers)),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clearExisting {
			if err := s.customerRepo.DeleteAllTx(tx); err != nil {
				return fmt.Errorf("failed to clear existing customers: %w", err)
			}
		}

		for i, customer := range customers {
			item := ImportItemResult{Index: i}
			if customer != nil {
				item.ExternalSource = customer.ExternalSource
				item.ExternalID = customer.ExternalID
			}

			// Savepoint per record: a failed upsert must not poison the batch
			upsertErr := tx.Transaction(func(itemTx *gorm.DB) error {
				if customer == nil {
					return errors.New("customer cannot be nil")
				}
				return s.customerRepo.UpsertTx(itemTx, customer)
			})

			if upsertErr != nil {
				item.Success = false
				item.Error = upsertErr.Error()
				summary.Failed++
			} else {
				item.Success = true
				summary.Successful++
			}

			summary.Details = append(summary.Details, item)
		}

		return nil
	})
	if err != nil {
		s.metrics.IncrementCounter("bulk_import", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("bulk import transaction failed: %w", err)
	}

	s.metrics.IncrementCounter("bulk_import", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("bulk_import", time.Since(startTime))

	return summary, nil
}
