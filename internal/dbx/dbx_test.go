package dbx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	"github.com/BruksfildServices01/barbershop-booking/internal/testutil"
)

func insertNotification(t *testing.T, q dbx.Querier, title string, read bool) int64 {
	t.Helper()
	res, err := q.Run(context.Background(),
		"INSERT INTO notifications (type, title, message, link, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		"booking", title, "msg", "/admin/bookings", read, time.Now(),
	)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	return res.LastID
}

func TestRunGetAll(t *testing.T) {
	db := testutil.Open(t).X
	ctx := context.Background()

	first := insertNotification(t, db, "one", false)
	second := insertNotification(t, db, "two", true)
	if first <= 0 || second <= first {
		t.Fatalf("ids = %d, %d", first, second)
	}

	row, found, err := db.Get(ctx, "SELECT * FROM notifications WHERE id = ?", second)
	if err != nil || !found {
		t.Fatalf("Get() found=%v err=%v", found, err)
	}
	if row.String("title") != "two" || !row.Bool("is_read") {
		t.Fatalf("unexpected row %v", row)
	}
	if row.Time("created_at").IsZero() {
		t.Fatalf("created_at not decoded: %#v", row["created_at"])
	}

	_, found, err = db.Get(ctx, "SELECT * FROM notifications WHERE id = ?", 9999)
	if err != nil || found {
		t.Fatalf("Get(missing) found=%v err=%v", found, err)
	}

	rows, err := db.All(ctx, "SELECT id FROM notifications WHERE is_read = 0 ORDER BY id")
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Int64("id") != first {
		t.Fatalf("All() = %v", rows)
	}

	none, err := db.All(ctx, "SELECT id FROM notifications WHERE title = ?", "nope")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("All(empty) = %v, %v", none, err)
	}

	res, err := db.Run(ctx, "UPDATE notifications SET is_read = 1 WHERE is_read = 0")
	if err != nil {
		t.Fatalf("Run(update) error = %v", err)
	}
	if res.Changes != 1 {
		t.Fatalf("Changes = %d, want 1", res.Changes)
	}
}

func TestTxRollsBackOnError(t *testing.T) {
	db := testutil.Open(t).X
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.Tx(ctx, func(q dbx.Querier) error {
		insertNotification(t, q, "inside", false)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Tx() error = %v, want boom", err)
	}

	row, _, err := db.Get(ctx, "SELECT COUNT(*) AS n FROM notifications")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if row.Int64("n") != 0 {
		t.Fatalf("rows after rollback = %d", row.Int64("n"))
	}

	if err := db.Tx(ctx, func(q dbx.Querier) error {
		insertNotification(t, q, "kept", false)
		return nil
	}); err != nil {
		t.Fatalf("Tx() commit error = %v", err)
	}
	row, _, _ = db.Get(ctx, "SELECT COUNT(*) AS n FROM notifications")
	if row.Int64("n") != 1 {
		t.Fatalf("rows after commit = %d", row.Int64("n"))
	}
}

func TestTxRollsBackOnPanic(t *testing.T) {
	db := testutil.Open(t).X
	ctx := context.Background()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		_ = db.Tx(ctx, func(q dbx.Querier) error {
			insertNotification(t, q, "inside", false)
			panic("boom")
		})
	}()

	// the connection must be back in the pool and the insert gone
	row, _, err := db.Get(ctx, "SELECT COUNT(*) AS n FROM notifications")
	if err != nil {
		t.Fatalf("count after panic: %v", err)
	}
	if row.Int64("n") != 0 {
		t.Fatalf("rows after panic = %d", row.Int64("n"))
	}
}

func TestIsUniqueViolation(t *testing.T) {
	db := testutil.Open(t).X
	ctx := context.Background()

	insert := "INSERT INTO users (name, email, role, created_at, updated_at) VALUES (?, ?, 'user', ?, ?)"
	now := time.Now()
	if _, err := db.Run(ctx, insert, "A", "a@example.com", now, now); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := db.Run(ctx, insert, "B", "a@example.com", now, now)
	if !dbx.IsUniqueViolation(err) {
		t.Fatalf("IsUniqueViolation(%v) = false", err)
	}
	if dbx.IsUniqueViolation(errors.New("other")) || dbx.IsUniqueViolation(nil) {
		t.Fatalf("IsUniqueViolation reported a false positive")
	}
}

func TestAcquireTimeout(t *testing.T) {
	tdb := testutil.Open(t)
	db := dbx.New(tdb.SQL, dbx.SQLite, dbx.Options{AcquireTimeout: 50 * time.Millisecond})
	ctx := context.Background()

	// the test pool holds a single connection; keep it busy
	err := db.Tx(ctx, func(dbx.Querier) error {
		_, _, err := db.Get(ctx, "SELECT 1")
		return err
	})
	if !errors.Is(err, dbx.ErrAcquireTimeout) {
		t.Fatalf("error = %v, want ErrAcquireTimeout", err)
	}
}

// The Postgres dialect reads the new id from "INSERT ... RETURNING id"
// instead of LastInsertId. SQLite understands both the $n markers and
// RETURNING, so the same pool can stand in for Postgres here.
func TestRunReturningID(t *testing.T) {
	tdb := testutil.Open(t)
	db := dbx.New(tdb.SQL, dbx.Postgres, dbx.Options{})
	ctx := context.Background()

	first := insertNotification(t, db, "one", false)
	res, err := db.Run(ctx,
		"INSERT INTO notifications (type, title, message, link, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		"review", "two", "msg", "/admin/team", false, time.Now(),
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.LastID != first+1 || res.Changes != 1 || len(res.Rows) != 1 {
		t.Fatalf("Run() = %+v, want LastID %d, one change, one row", res, first+1)
	}
	if res.Rows[0].Int64("id") != res.LastID {
		t.Fatalf("returned row = %v", res.Rows[0])
	}

	err = db.Tx(ctx, func(q dbx.Querier) error {
		res, err = q.Run(ctx,
			"INSERT INTO notifications (type, title, message, link, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING id, title",
			"review", "three", "msg", "/admin/team", true, time.Now(),
		)
		return err
	})
	if err != nil {
		t.Fatalf("Tx() error = %v", err)
	}
	if res.LastID != first+2 || res.Rows[0].String("title") != "three" {
		t.Fatalf("explicit RETURNING = %+v", res)
	}

	// plain statements still report affected rows
	res, err = db.Run(ctx, "UPDATE notifications SET is_read = 1 WHERE is_read = 0")
	if err != nil || res.Changes != 2 || res.LastID != 0 {
		t.Fatalf("update = %+v, %v", res, err)
	}
}
