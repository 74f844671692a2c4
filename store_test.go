package finbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance-data.json")
	store := NewFileStore(path)

	s := SampleSnapshot()
	if err := store.Save(s); err != nil {
		t.Fatal(err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Transactions) != len(s.Transactions) ||
		len(got.Budgets) != len(s.Budgets) ||
		len(got.Debts) != len(s.Debts) {
		t.Errorf("loaded snapshot differs: %+v", got)
	}
	if got.Transactions[0].ID != s.Transactions[0].ID {
		t.Error("transaction ids did not survive the round trip")
	}
	if !got.Transactions[0].Amount.Equal(s.Transactions[0].Amount) {
		t.Error("amounts did not survive the round trip")
	}
}

func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load()
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("missing file: err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "finance-data.json")
	if err := NewFileStore(path).Save(SampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "finance-data.json"))
	for range 3 {
		if err := store.Save(SampleSnapshot()); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "finance-data.json" {
		t.Errorf("directory not clean after saves: %v", entries)
	}
}

func TestLedgerLoadFallsBackToSample(t *testing.T) {
	sample := SampleSnapshot()

	// missing file
	l := NewLedger()
	l.Load(NewFileStore(filepath.Join(t.TempDir(), "nope.json")))
	if got := len(l.Transactions()); got != len(sample.Transactions) {
		t.Errorf("missing snapshot: %d transactions, want the sample's %d", got, len(sample.Transactions))
	}

	// corrupt file
	path := filepath.Join(t.TempDir(), "finance-data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	l = NewLedger()
	l.Load(NewFileStore(path))
	if got := len(l.Budgets()); got != len(sample.Budgets) {
		t.Errorf("corrupt snapshot: %d budgets, want the sample's %d", got, len(sample.Budgets))
	}
}

func TestLedgerPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance-data.json")
	store := NewFileStore(path)

	l := NewLedgerOf(&Snapshot{})
	l.AddTransaction(Transaction{Amount: M(42.10), Category: Transportation, Merchant: "Lyft"})
	if err := l.Persist(store); err != nil {
		t.Fatal(err)
	}

	reloaded := NewLedger()
	reloaded.Load(store)
	got := reloaded.Transactions()
	if len(got) != 1 || got[0].Merchant != "Lyft" {
		t.Errorf("reloaded = %v", got)
	}
}

// countingStore records the transaction count of every snapshot it saves.
type countingStore struct {
	mu     sync.Mutex
	counts []int
}

func (c *countingStore) Load() (*Snapshot, error) { return nil, ErrSnapshotNotFound }

func (c *countingStore) Save(s *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = append(c.counts, len(s.Transactions))
	return nil
}

func TestPersistFlushOrder(t *testing.T) {
	// With transactions only ever added, the snapshots reaching the store
	// must have non-decreasing sizes: a flush must never write state older
	// than one already written.
	l := NewLedger()
	store := &countingStore{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				l.AddTransaction(Transaction{Amount: M(1)})
				if err := l.Persist(store); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	for i := 1; i < len(store.counts); i++ {
		if store.counts[i] < store.counts[i-1] {
			t.Fatalf("flush %d wrote %d transactions after a flush of %d", i, store.counts[i], store.counts[i-1])
		}
	}
}

func TestDecodeSnapshotRejectsInvalid(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(`{"transactions": [
		{"id": "b2c8f6a0-0000-0000-0000-000000000001", "date": "2024-02-14", "amount": {"amount": "-5"}}
	]}`))
	if err == nil || !strings.Contains(err.Error(), "negative") {
		t.Errorf("negative amount: err = %v", err)
	}

	_, err = DecodeSnapshot(strings.NewReader("[]"))
	if err == nil {
		t.Error("wrong JSON shape should not decode")
	}
}

const mixedCurrencyJSON = `{"transactions": [
	{"id": "b2c8f6a0-0000-0000-0000-000000000001", "date": "2024-02-14", "amount": {"amount": "5", "currency": "USD"}},
	{"id": "b2c8f6a0-0000-0000-0000-000000000002", "date": "2024-02-15", "amount": {"amount": "5", "currency": "EUR"}}
]}`

func TestMixedCurrencySnapshotFailsOver(t *testing.T) {
	// A file mixing currencies must be stopped at the store boundary;
	// summing it would panic inside the aggregation functions.
	if _, err := DecodeSnapshot(strings.NewReader(mixedCurrencyJSON)); err == nil ||
		!strings.Contains(err.Error(), "currency") {
		t.Errorf("mixed currencies: err = %v", err)
	}

	path := filepath.Join(t.TempDir(), "finance-data.json")
	if err := os.WriteFile(path, []byte(mixedCurrencyJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLedger()
	l.Load(NewFileStore(path))
	if got := len(l.Transactions()); got != len(SampleSnapshot().Transactions) {
		t.Errorf("mixed-currency file: %d transactions, want the sample's", got)
	}
	TotalSpent(l.Snapshot(), Monthly.Range(Today())) // must not panic
}
