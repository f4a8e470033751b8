package models

// Bucket is one of the mutually exclusive order digest categories.
type Bucket int

const (
	// BucketNone means the row is not reported.
	BucketNone Bucket = iota
	BucketUndelivered
	BucketDeliveredNotReceived
	BucketNoDeliveryDate
	BucketAwaitingStatusChange
)

// DigestOrder is the section order of the order digest email.
var DigestOrder = []Bucket{
	BucketUndelivered,
	BucketDeliveredNotReceived,
	BucketAwaitingStatusChange,
	BucketNoDeliveryDate,
}

func (b Bucket) String() string {
	switch b {
	case BucketUndelivered:
		return "Undelivered"
	case BucketDeliveredNotReceived:
		return "DeliveredNotReceived"
	case BucketNoDeliveryDate:
		return "NoDeliveryDate"
	case BucketAwaitingStatusChange:
		return "AwaitingStatusChange"
	}
	return "None"
}

// Title is the section heading used in the digest email.
func (b Bucket) Title() string {
	switch b {
	case BucketUndelivered:
		return "Undelivered items"
	case BucketDeliveredNotReceived:
		return "Delivered but employee hasn't received yet"
	case BucketNoDeliveryDate:
		return "No delivery date"
	case BucketAwaitingStatusChange:
		return "Awaiting for status change"
	}
	return ""
}
