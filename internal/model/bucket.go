package model

// BucketKey identifies one cost bucket in the finance snapshot.
// The set is closed: every cost item category must map to exactly one key.
type BucketKey string

// Fixed-cost buckets (incurred regardless of client volume).
const (
	BucketLeadership     BucketKey = "leadership"
	BucketTechnical      BucketKey = "technical"
	BucketContent        BucketKey = "content"
	BucketMarketingSales BucketKey = "marketingSales"
	BucketOperations     BucketKey = "operations"
	BucketInfrastructure BucketKey = "infrastructure"
	BucketOverhead       BucketKey = "overhead"
)

// Variable-cost buckets (scale with activity).
const (
	BucketMarketing BucketKey = "marketing"
)

// FixedBuckets lists the fixed-cost bucket keys in display order.
var FixedBuckets = []BucketKey{
	BucketLeadership,
	BucketTechnical,
	BucketContent,
	BucketMarketingSales,
	BucketOperations,
	BucketInfrastructure,
	BucketOverhead,
}

// VariableBuckets lists the variable-cost bucket keys in display order.
var VariableBuckets = []BucketKey{
	BucketMarketing,
}

var bucketVariable = map[BucketKey]bool{
	BucketLeadership:     false,
	BucketTechnical:      false,
	BucketContent:        false,
	BucketMarketingSales: false,
	BucketOperations:     false,
	BucketInfrastructure: false,
	BucketOverhead:       false,
	BucketMarketing:      true,
}

// BucketFor maps an external category string to a bucket key.
// Unknown categories return ok=false; callers must treat that as a
// data-entry error, never as an empty bucket.
func BucketFor(category string) (BucketKey, bool) {
	key := BucketKey(category)
	_, known := bucketVariable[key]
	return key, known
}

// IsVariable reports whether the bucket holds variable costs.
func IsVariable(key BucketKey) bool {
	return bucketVariable[key]
}
