package mockapi

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/kvstore"
	"github.com/dnlklmn/wpr-presence/internal/models"

	"go.uber.org/zap"
)

// Storage keys shared with the original web client's mock mode.
const (
	keyRecords = "mock_hours_records_v2"
	keyNextID  = "mock_hours_next_id_v2"
)

// RecordStore emulates server-side durable storage of hour records on top
// of the local key-value store. On first use it seeds a week of historical
// data so the history view is never empty.
type RecordStore struct {
	store  kvstore.Store
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger

	// Guards the read-increment-write of the id counter, and seeding.
	mu sync.Mutex
}

// NewRecordStore creates a record store over the given key-value store.
func NewRecordStore(store kvstore.Store, logger *zap.Logger) *RecordStore {
	return &RecordStore{
		store:  store,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		logger: logger,
	}
}

// WithRand overrides the random source, for deterministic tests.
func (r *RecordStore) WithRand(rng *rand.Rand) *RecordStore {
	r.rng = rng
	return r
}

// WithClock overrides the time source, for tests.
func (r *RecordStore) WithClock(now func() time.Time) *RecordStore {
	r.now = now
	return r
}

// Load returns the stored records, seeding historical data on first use.
// Unreadable stored state is discarded and reseeded rather than surfaced.
func (r *RecordStore) Load() ([]models.HoursRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok, err := r.store.Get(keyRecords)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if ok {
		var records []models.HoursRecord
		if err := json.Unmarshal([]byte(data), &records); err == nil {
			return records, nil
		}
		r.logger.Warn("Stored hour records are unreadable, reseeding",
			zap.Int("bytes", len(data)),
		)
	}

	records := generateHistorical(r.rng, r.now())
	if err := r.saveLocked(records); err != nil {
		return nil, err
	}
	if err := r.store.Set(keyNextID, strconv.Itoa(len(records)+1)); err != nil {
		return nil, fmt.Errorf("init id counter: %w", err)
	}

	r.logger.Info("Seeded historical hour records",
		zap.Int("count", len(records)),
	)
	return records, nil
}

// Save overwrites the stored collection. Last writer wins.
func (r *RecordStore) Save(records []models.HoursRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(records)
}

func (r *RecordStore) saveLocked(records []models.HoursRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := r.store.Set(keyRecords, string(data)); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// NextID returns the current id counter and advances it. The whole
// read-increment-write is one critical section so no two callers can
// observe the same id.
func (r *RecordStore) NextID() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := 1
	data, ok, err := r.store.Get(keyNextID)
	if err != nil {
		return 0, fmt.Errorf("read id counter: %w", err)
	}
	if ok {
		if parsed, err := strconv.Atoi(data); err == nil {
			id = parsed
		}
	}

	if err := r.store.Set(keyNextID, strconv.Itoa(id+1)); err != nil {
		return 0, fmt.Errorf("advance id counter: %w", err)
	}
	return id, nil
}
