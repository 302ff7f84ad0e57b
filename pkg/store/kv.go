package store

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned when a write would push the stored records
// past the configured quota.
var ErrQuotaExceeded = errors.New("store: quota exceeded")

// KV is the byte store records are kept in. *diskv.Diskv satisfies it.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Has(key string) bool
}

// Quota rejects writes that would make the combined size of Keys larger than
// Limit bytes.
type Quota struct {
	KV
	Limit int64
	Keys  []string
}

func (q Quota) Write(key string, val []byte) error {
	if q.Limit <= 0 {
		return q.KV.Write(key, val)
	}
	total := int64(len(val))
	for _, other := range q.Keys {
		if other == key || !q.KV.Has(other) {
			continue
		}
		data, err := q.KV.Read(other)
		if err != nil {
			continue
		}
		total += int64(len(data))
	}
	if total > q.Limit {
		return fmt.Errorf("write %s: %d of %d bytes: %w", key, total, q.Limit, ErrQuotaExceeded)
	}
	return q.KV.Write(key, val)
}
