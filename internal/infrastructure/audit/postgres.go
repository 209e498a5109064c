package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lensmatch/backend/internal/domain"
)

// resolutionRecord is the persisted shape of one audit entry. Append-only:
// nothing in the core updates or deletes rows.
type resolutionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	RawText   string `gorm:"not null"`
	HybridID  string
	AIID      string `gorm:"column:ai_id"`
	FinalID   string
	Agreement bool
}

func (resolutionRecord) TableName() string { return "resolution_audits" }

// PostgresSink persists resolution audit records to Postgres
type PostgresSink struct {
	db *gorm.DB
}

// NewPostgresSink connects to the audit store and ensures the table exists
func NewPostgresSink(dsn string) (*PostgresSink, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect audit store: %w", err)
	}

	if err := db.AutoMigrate(&resolutionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit store: %w", err)
	}

	return &PostgresSink{db: db}, nil
}

// Record appends one audit entry
func (s *PostgresSink) Record(ctx context.Context, audit *domain.ResolutionAudit) error {
	record := resolutionRecord{
		ID:        uuid.New(),
		RawText:   audit.RawText,
		HybridID:  audit.HybridID,
		AIID:      audit.AIID,
		FinalID:   audit.FinalID,
		Agreement: audit.Agreement,
	}
	return s.db.WithContext(ctx).Create(&record).Error
}
