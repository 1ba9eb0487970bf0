package tournament

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"

	"padelcygnus/internal/adapters/storage"
	domain "padelcygnus/internal/domain/tournament"
)

// TestSQLiteStore_RegisterRoundTrip verifies incremented headcounts persist.
func TestSQLiteStore_RegisterRoundTrip(t *testing.T) {
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.Exec("INSERT INTO workspace (id, kind, created_at) VALUES ('w-1', 'member', 'now')"); err != nil {
		t.Fatalf("insert workspace: %v", err)
	}
	s := NewSQLiteStore(db)
	ctx := context.Background()

	seed := []domain.Tournament{
		{ID: "1", Name: "Campeonato de Primavera", Date: "20/03/2024", Participants: 10},
		{ID: "2", Name: "Liga de Dobles", Date: "30/03/2024", Participants: 20},
	}
	for _, tr := range seed {
		if err := s.Save(ctx, "w-1", tr); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	tr, err := s.GetByID(ctx, "w-1", "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	tr.Register()
	if err := s.Save(ctx, "w-1", tr); err != nil {
		t.Fatalf("Save registered: %v", err)
	}

	list, err := s.List(ctx, "w-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Participants != 11 || list[1].Participants != 20 {
		t.Errorf("list = %+v, want [11, 20] participants", list)
	}

	if err := s.Delete(ctx, "w-1", "2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, _ = s.List(ctx, "w-1")
	if len(list) != 1 {
		t.Errorf("len after delete = %d, want 1", len(list))
	}
}
