package dbx

import "testing"

func TestRebind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "three markers in order",
			in:   "SELECT * FROM t WHERE a = ? AND b = ? AND c = ?",
			want: "SELECT * FROM t WHERE a = $1 AND b = $2 AND c = $3",
		},
		{
			name: "no markers",
			in:   "SELECT 1",
			want: "SELECT 1",
		},
		{
			name: "markers inside literals are kept",
			in:   "SELECT '?' AS q, \"we?rd\" FROM t WHERE a = ?",
			want: "SELECT '?' AS q, \"we?rd\" FROM t WHERE a = $1",
		},
		{
			name: "escaped quote inside literal",
			in:   "SELECT 'it''s ?' WHERE x = ?",
			want: "SELECT 'it''s ?' WHERE x = $1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rebind(tt.in)
			if got != tt.want {
				t.Fatalf("Rebind() = %q, want %q", got, tt.want)
			}
			if again := Rebind(got); again != got {
				t.Fatalf("Rebind() not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCoerceBooleans(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"WHERE is_available = 1", "WHERE is_available = true"},
		{"WHERE s.is_active=0 AND is_popular = 1", "WHERE s.is_active = false AND is_popular = true"},
		{"SET is_read = 1 WHERE id = ?", "SET is_read = true WHERE id = ?"},
		{"WHERE rating = 1", "WHERE rating = 1"},
		{"WHERE is_active = 10", "WHERE is_active = 10"},
	}
	for _, tt := range tests {
		if got := CoerceBooleans(tt.in); got != tt.want {
			t.Fatalf("CoerceBooleans(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithReturningID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INSERT INTO t (a) VALUES (?)", "INSERT INTO t (a) VALUES (?) RETURNING id"},
		{"  insert into t (a) values (?);  ", "insert into t (a) values (?) RETURNING id"},
		{"INSERT INTO t (a) VALUES (?) RETURNING id, a", "INSERT INTO t (a) VALUES (?) RETURNING id, a"},
		{"UPDATE t SET a = ?", "UPDATE t SET a = ?"},
	}
	for _, tt := range tests {
		if got := WithReturningID(tt.in); got != tt.want {
			t.Fatalf("WithReturningID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	q := "INSERT INTO notifications (title, is_read) SELECT ?, is_read FROM n WHERE is_read = 0"

	if got := SQLite.Translate(q); got != q {
		t.Fatalf("SQLite.Translate() changed the query: %q", got)
	}

	want := "INSERT INTO notifications (title, is_read) SELECT $1, is_read FROM n WHERE is_read = false RETURNING id"
	if got := Postgres.Translate(q); got != want {
		t.Fatalf("Postgres.Translate() = %q, want %q", got, want)
	}
}

func TestParseDialect(t *testing.T) {
	if d, err := ParseDialect(" Postgres "); err != nil || d != Postgres {
		t.Fatalf("ParseDialect(postgres) = %q, %v", d, err)
	}
	if _, err := ParseDialect("oracle"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
