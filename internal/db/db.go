package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Open builds the single process-wide pool. gorm and the dbx layer both
// sit on top of it.
func Open(dialect dbx.Dialect, url string, pool PoolConfig) (*sql.DB, error) {
	driver := "pgx"
	if dialect == dbx.SQLite {
		// registered by gorm.io/driver/sqlite (mattn/go-sqlite3)
		driver = "sqlite3"
	}

	sqlDB, err := sql.Open(driver, url)
	if err != nil {
		return nil, err
	}

	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	if pool.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func NewGorm(sqlDB *sql.DB, dialect dbx.Dialect) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dialect {
	case dbx.Postgres:
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case dbx.SQLite:
		dialector = &sqlite.Dialector{Conn: sqlDB}
	default:
		return nil, fmt.Errorf("db: unsupported dialect %q", dialect)
	}

	return gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Booking{},
		&models.BookingService{},
		&models.Review{},
		&models.GalleryItem{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if err := gdb.Exec(models.ActiveSlotIndex).Error; err != nil {
		return fmt.Errorf("failed to create active slot index: %w", err)
	}

	return nil
}
