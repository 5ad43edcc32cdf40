package storage

import (
	"testing"

	"github.com/cubekit/cubesim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(3, KindShuffle, "seeded run")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s == nil {
		t.Fatal("session not found")
	}
	if s.CubeSize != 3 || s.Kind != KindShuffle || s.EndedAt != nil {
		t.Errorf("unexpected session: %+v", s)
	}
	if s.Notes == nil || *s.Notes != "seeded run" {
		t.Errorf("notes not stored: %+v", s.Notes)
	}

	if err := repo.End(id, true); err != nil {
		t.Fatalf("end: %v", err)
	}

	s, err = repo.Get(id)
	if err != nil {
		t.Fatalf("get after end: %v", err)
	}
	if s.EndedAt == nil || s.DurationMs == nil {
		t.Error("ended session should have end time and duration")
	}
	if !s.Solved {
		t.Error("solved flag not stored")
	}
}

func TestGetMissingSession(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	s, err := repo.Get("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for a missing session, got %+v", s)
	}
}

func TestMoveBatchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(4, KindShuffle, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	seq := []cubesim.Move{
		{Axis: cubesim.AxisX, Layer: 0, Dir: cubesim.CW},
		{Axis: cubesim.AxisY, Layer: 3, Dir: cubesim.CCW},
		{Axis: cubesim.AxisZ, Layer: 1, Dir: cubesim.Double},
	}
	if err := moves.CreateBatch(id, seq); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	records, err := moves.GetBySession(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != len(seq) {
		t.Fatalf("got %d records, want %d", len(records), len(seq))
	}

	for i, rec := range records {
		m, err := rec.Move()
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if m != seq[i] {
			t.Errorf("record %d: got %+v, want %+v", i, m, seq[i])
		}
		if rec.Notation != seq[i].Notation() {
			t.Errorf("record %d: notation %q, want %q", i, rec.Notation, seq[i].Notation())
		}
	}

	count, err := sessions.GetMoveCount(id)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(seq) {
		t.Errorf("move count %d, want %d", count, len(seq))
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	if _, err := repo.Create(2, KindShuffle, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(5, KindSolve, "second"); err != nil {
		t.Fatal(err)
	}

	sessions, err := repo.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
}
