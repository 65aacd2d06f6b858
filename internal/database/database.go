package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/pathakanu/rewardsHub/internal/seed"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New creates a GORM database connection.
// When databaseURL is provided PostgreSQL is used, otherwise an in-memory SQLite
// database that lives as long as the process.
func New(databaseURL string) (*gorm.DB, error) {
	if databaseURL != "" {
		return open(postgres.Open(databaseURL))
	}
	return NewMemory("rewardshub")
}

// NewMemory opens a named in-memory SQLite database. Distinct names give
// independent databases, which keeps tests isolated.
func NewMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	db, err := open(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A shared-cache memory database disappears with its last connection and
	// locks tables across connections; one long-lived connection avoids both.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	return db, nil
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Reminder{}, &model.Offer{}, &model.NotificationSetting{}); err != nil {
		return nil, err
	}

	logBackend(db)
	return db, nil
}

// Reset replaces every table's content with the seed data.
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []any{&model.Reminder{}, &model.Offer{}, &model.NotificationSetting{}} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("clear %T: %w", table, err)
			}
		}

		reminders := seed.Reminders()
		if err := tx.Create(&reminders).Error; err != nil {
			return fmt.Errorf("seed reminders: %w", err)
		}
		offers := seed.Offers()
		if err := tx.Create(&offers).Error; err != nil {
			return fmt.Errorf("seed offers: %w", err)
		}
		settings := seed.NotificationSettings()
		if err := tx.Create(&settings).Error; err != nil {
			return fmt.Errorf("seed notification settings: %w", err)
		}

		if strings.EqualFold(tx.Dialector.Name(), "postgres") {
			// Seed rows carry explicit ids; move the sequences past them.
			for _, table := range []string{"reminders", "offers"} {
				stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))", table)
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("advance %s sequence: %w", table, err)
				}
			}
		}
		return nil
	})
}

func logBackend(db *gorm.DB) {
	dialector := db.Dialector.Name()
	switch strings.ToLower(dialector) {
	case "postgres":
		log.Printf("database: connected to PostgreSQL")
	case "sqlite":
		log.Printf("database: using in-memory SQLite")
	default:
		log.Printf("database: connected via %s", dialector)
	}
}
