package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"comercio/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express on its own.
//
// TranslateError is enabled so driver errors surface as gorm.ErrDuplicatedKey /
// gorm.ErrForeignKeyViolated, which the handler layer maps to 400 responses.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the schema. Also used by integration tests
// against a throwaway container database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Order{},
		&model.Remission{},
		&model.Sale{},
		&model.CreditAssignment{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Composite index serving both the ledger query (by remission) and the
		// daily report range scan.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_sales_remission_created') THEN
		    CREATE INDEX idx_sales_remission_created
		        ON sales (remission_id, created_at);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
