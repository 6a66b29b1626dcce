package catalog

import (
	"regexp"
	"strings"
)

var nonAlnumRx = regexp.MustCompile(`[^a-z0-9]+`)

// CanonicalKey reduces a title to a lossy clustering key: edition noise
// stripped, lower-cased, every non-alphanumeric character removed. Titles
// that differ only in store-specific formatting share a key.
func CanonicalKey(name string) string {
	base := StripEditionNoise(name)
	return nonAlnumRx.ReplaceAllString(strings.ToLower(base), "")
}

// Cluster buckets records by canonical key. Within a bucket the first-seen
// order is preserved. No representative is chosen; cross-store merge policy
// belongs to the consumer.
func Cluster(records []Record) map[string][]Record {
	buckets := make(map[string][]Record)
	for _, r := range records {
		k := CanonicalKey(r.Name)
		buckets[k] = append(buckets[k], r)
	}
	return buckets
}
