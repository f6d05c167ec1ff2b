// Package testutil opens migrated in-memory SQLite databases for tests.
package testutil

import (
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

var seq atomic.Int64

type TestDB struct {
	SQL  *sql.DB
	Gorm *gorm.DB
	X    *dbx.DB
}

// Open returns a fresh migrated database private to t. A named
// shared-cache memory DSN keeps every pooled connection on the same
// database.
func Open(t *testing.T) TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_busy_timeout=5000", seq.Add(1))
	sqlDB, err := db.Open(dbx.SQLite, dsn, db.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := db.NewGorm(sqlDB, dbx.SQLite)
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return TestDB{
		SQL:  sqlDB,
		Gorm: gdb,
		X:    dbx.New(sqlDB, dbx.SQLite, dbx.Options{}),
	}
}

// Recorder is a synchronous notify.Publisher.
type Recorder struct {
	mu     sync.Mutex
	Events []notify.Event
}

func (r *Recorder) Publish(ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Title)
	}
	return out
}
