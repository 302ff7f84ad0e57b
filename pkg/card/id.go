package card

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var fallbackSeq atomic.Uint64

// NewID returns a random UUID. If the secure random source fails it falls
// back to a timestamp, a random suffix and a process-wide sequence number.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackID(time.Now())
	}
	return id.String()
}

func fallbackID(now time.Time) string {
	return fmt.Sprintf("fc_%d_%x_%d", now.UnixMilli(), rand.Uint32(), fallbackSeq.Add(1))
}
