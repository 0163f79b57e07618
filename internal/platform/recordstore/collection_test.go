package recordstore_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"studyhub/internal/platform/recordstore"
)

type entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

func TestCollectionRoundTripOnSQLite(t *testing.T) {
	t.Parallel()
	medium, err := recordstore.NewSQLiteMedium(filepath.Join(t.TempDir(), "nested", "records.db"))
	if err != nil {
		t.Fatalf("open medium: %v", err)
	}
	defer medium.Close()

	col := recordstore.NewCollection(medium, recordstore.KeyProgress, recordstore.List[entry](), nil)
	ctx := context.Background()
	want := []entry{{ID: "q1", Label: "Functions", Done: true}, {ID: "q2", Label: "Modulus"}}
	if err := col.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := col.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := col.Set(ctx, got); err != nil {
		t.Fatalf("set again: %v", err)
	}
	if got := mustGet(t, col); !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := col.Set(ctx, []entry{{ID: "q3"}}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := mustGet(t, col); len(got) != 1 || got[0].ID != "q3" {
		t.Fatalf("expected full overwrite, got %+v", got)
	}
}

func TestCollectionFallsBackOnMissingAndMalformed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	seed := func() []entry { return []entry{{ID: "seed"}} }
	col := recordstore.NewCollection(medium, recordstore.KeyProgress, seed, nil)

	if got := mustGet(t, col); len(got) != 1 || got[0].ID != "seed" {
		t.Fatalf("expected seed for missing key, got %+v", got)
	}
	for _, raw := range []string{"{not json", `{"id":"object-not-list"}`, "null"} {
		if err := medium.Set(ctx, recordstore.KeyProgress, []byte(raw)); err != nil {
			t.Fatalf("seed raw: %v", err)
		}
		if got := mustGet(t, col); len(got) != 1 || got[0].ID != "seed" {
			t.Fatalf("expected seed for %q, got %+v", raw, got)
		}
	}
	if err := medium.Set(ctx, recordstore.KeyProgress, []byte("[]")); err != nil {
		t.Fatalf("seed empty: %v", err)
	}
	if got := mustGet(t, col); len(got) != 0 {
		t.Fatalf("stored empty list must be honored, got %+v", got)
	}
}

type brokenMedium struct {
	*recordstore.MemoryMedium
}

var errBusy = errors.New("database is locked (5) (SQLITE_BUSY)")

func (brokenMedium) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errBusy
}

func TestCollectionReturnsReadFailures(t *testing.T) {
	t.Parallel()
	seed := func() []entry { return []entry{{ID: "seed"}} }
	col := recordstore.NewCollection(brokenMedium{recordstore.NewMemoryMedium()}, recordstore.KeyProgress, seed, nil)
	got, err := col.Get(context.Background())
	if !errors.Is(err, errBusy) {
		t.Fatalf("expected the medium error, got %v", err)
	}
	if got != nil {
		t.Fatalf("a failed read must not hand out the fallback, got %+v", got)
	}
}

func TestSQLiteReadWaitsForAnotherWriter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.db")
	medium, err := recordstore.NewSQLiteMedium(path)
	if err != nil {
		t.Fatalf("open medium: %v", err)
	}
	defer medium.Close()
	col := recordstore.NewCollection(medium, recordstore.KeyMockScores, recordstore.List[entry](), nil)
	if err := col.Set(ctx, []entry{{ID: "s1"}, {ID: "s2"}}); err != nil {
		t.Fatalf("set: %v", err)
	}

	other, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open second handle: %v", err)
	}
	defer other.Close()
	conn, err := other.Conn(ctx)
	if err != nil {
		t.Fatalf("second conn: %v", err)
	}
	defer conn.Close()
	if _, err := conn.ExecContext(ctx, "BEGIN EXCLUSIVE"); err != nil {
		t.Fatalf("lock: %v", err)
	}
	go func() {
		time.Sleep(200 * time.Millisecond)
		_, _ = conn.ExecContext(ctx, "COMMIT")
	}()

	got, err := col.Get(ctx)
	if err != nil {
		t.Fatalf("read under a short lock should wait, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both stored records, got %+v", got)
	}
}

func mustGet[T any](t *testing.T, col recordstore.Collection[T]) T {
	t.Helper()
	got, err := col.Get(context.Background())
	if err != nil {
		t.Fatalf("get %s: %v", col.Key(), err)
	}
	return got
}

func TestCollectionClearRemovesKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	col := recordstore.NewCollection(medium, recordstore.KeyUser, func() *entry { return nil }, nil)
	if err := col.Set(ctx, &entry{ID: "u"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := col.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := mustGet(t, col); got != nil {
		t.Fatalf("expected nil after clear, got %+v", got)
	}
	if _, ok, _ := medium.Get(ctx, recordstore.KeyUser); ok {
		t.Fatalf("key should be gone")
	}
}

func TestDumpAndRestore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	src := recordstore.NewMemoryMedium()
	_ = src.Set(ctx, recordstore.KeyDailyLogs, []byte(`[{"id":"l1","date":"2025-01-10"}]`))
	_ = src.Set(ctx, "unrelated", []byte(`1`))

	dump, err := recordstore.Dump(ctx, src)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if _, ok := dump["unrelated"]; ok {
		t.Fatalf("dump must skip keys outside the namespace")
	}

	// Browser exports hold each document as a JSON string.
	dump[recordstore.KeyUser] = json.RawMessage(`"{\"name\":\"Asha\",\"createdAt\":\"2025-01-01T00:00:00Z\"}"`)
	dump["ipmat_theme"] = json.RawMessage(`"dark"`)

	dst := recordstore.NewMemoryMedium()
	written, err := recordstore.Restore(ctx, dst, dump)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(written, []string{recordstore.KeyDailyLogs, recordstore.KeyUser}) {
		t.Fatalf("unexpected written keys: %v", written)
	}
	raw, _, _ := dst.Get(ctx, recordstore.KeyUser)
	if string(raw) != `{"name":"Asha","createdAt":"2025-01-01T00:00:00Z"}` {
		t.Fatalf("string-wrapped document not unwrapped: %s", raw)
	}
}

func TestRestoreRejectsNonJSONString(t *testing.T) {
	t.Parallel()
	_, err := recordstore.Restore(context.Background(), recordstore.NewMemoryMedium(), map[string]json.RawMessage{
		recordstore.KeyVocab: json.RawMessage(`"not a document"`),
	})
	if err == nil {
		t.Fatalf("expected error for string that is not json")
	}
}
