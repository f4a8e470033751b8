package classify

import (
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// OrderRule holds the thresholds of the order digest.
type OrderRule struct {
	// MaxUndeliveredDays is the day count at or above which an open order is reported.
	MaxUndeliveredDays int
}

// DefaultOrderRule returns the standard digest rule.
func DefaultOrderRule() OrderRule {
	return OrderRule{MaxUndeliveredDays: 7}
}

// Classify assigns row to at most one bucket. The checks run in priority
// order and the first match wins; rows matching none (cancelled orders,
// received orders with a delivery date, recent open orders) get BucketNone.
func (r OrderRule) Classify(row models.OrderRow) models.Bucket {
	if !row.HasEntryDate() {
		return models.BucketNone
	}

	switch {
	case row.Status == models.StatusOrdered && row.UndeliveredDays >= r.MaxUndeliveredDays:
		return models.BucketUndelivered
	case row.Status == models.StatusDelivered:
		return models.BucketDeliveredNotReceived
	case row.Status == models.StatusReceived && !row.HasDeliveryDate():
		return models.BucketNoDeliveryDate
	case row.Status != models.StatusOrdered &&
		row.Status != models.StatusCancelled &&
		row.Status != models.StatusReceived:
		return models.BucketAwaitingStatusChange
	}
	return models.BucketNone
}

// Digest holds the bucketed order rows, each bucket in sheet order.
type Digest struct {
	Buckets map[models.Bucket][]models.OrderRow
}

// Rows returns the rows of bucket b.
func (d *Digest) Rows(b models.Bucket) []models.OrderRow {
	return d.Buckets[b]
}

// HasNewData reports whether any row was bucketed.
func (d *Digest) HasNewData() bool {
	for _, rows := range d.Buckets {
		if len(rows) > 0 {
			return true
		}
	}
	return false
}

// Counts returns the number of rows per bucket name.
func (d *Digest) Counts() map[string]int {
	counts := make(map[string]int, len(models.DigestOrder))
	for _, b := range models.DigestOrder {
		counts[b.String()] = len(d.Buckets[b])
	}
	return counts
}

// ClassifyOrders buckets every row according to rule.
func ClassifyOrders(rows []models.OrderRow, rule OrderRule) *Digest {
	digest := &Digest{Buckets: make(map[models.Bucket][]models.OrderRow)}
	for _, row := range rows {
		b := rule.Classify(row)
		if b == models.BucketNone {
			continue
		}
		digest.Buckets[b] = append(digest.Buckets[b], row)
	}
	return digest
}
