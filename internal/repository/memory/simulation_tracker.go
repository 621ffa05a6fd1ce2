package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SimulationTracker remembers which orders have a cooking simulation in
// flight so a redelivered message does not cook the same order twice.
// Entries expire on their own; a finished simulation deletes its entry.
type SimulationTracker struct {
	cache *cache.Cache
}

func NewSimulationTracker() *SimulationTracker {
	// TTL well past any realistic simulation run; purged every 10 minutes.
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &SimulationTracker{
		cache: c,
	}
}

// Start marks an order as being simulated. Returns false if it already was.
func (t *SimulationTracker) Start(orderId uuid.UUID) bool {
	err := t.cache.Add(orderId.String(), struct{}{}, cache.DefaultExpiration)
	return err == nil
}

func (t *SimulationTracker) Finish(orderId uuid.UUID) {
	t.cache.Delete(orderId.String())
}

func (t *SimulationTracker) InFlight(orderId uuid.UUID) bool {
	_, found := t.cache.Get(orderId.String())
	return found
}
