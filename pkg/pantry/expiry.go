package pantry

import (
	"time"
)

// ExpiryDateLayout is the storage format for item expiry dates.
const ExpiryDateLayout = "2006-01-02"

const (
	BucketExpired = "Expired"
	BucketSoon    = "Soon"
	BucketSafe    = "Safe"
)

// soonWindowDays is the inclusive upper bound of the Soon bucket.
const soonWindowDays = 3

type Classification struct {
	DaysLeft int
	Bucket   string
}

// Classify computes the whole-day distance between expiry and today and the
// resulting bucket. Both arguments are treated as calendar dates; any time
// component is discarded.
func Classify(expiry time.Time, today time.Time) Classification {
	daysLeft := int(dateOnly(expiry).Sub(dateOnly(today)).Hours() / 24)

	bucket := BucketSafe
	switch {
	case daysLeft < 0:
		bucket = BucketExpired
	case daysLeft <= soonWindowDays:
		bucket = BucketSoon
	}

	return Classification{DaysLeft: daysLeft, Bucket: bucket}
}

// ClassifyDate parses a stored "2006-01-02" expiry string and classifies it.
// A parse failure means the item is unclassifiable; callers skip such items
// instead of failing the whole sweep.
func ClassifyDate(expiry string, today time.Time) (Classification, error) {
	expiryDate, err := time.Parse(ExpiryDateLayout, expiry)
	if err != nil {
		return Classification{}, err
	}
	return Classify(expiryDate, today), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
