package monitor

// Batch is the ordered set of distinct URLs accumulated since the last
// flush. It stays small (the flush threshold caps it), so membership is a
// linear scan over the literal URL strings.
type Batch struct {
	urls []string
}

func NewBatch() *Batch {
	return &Batch{urls: make([]string, 0)}
}

// Contains reports whether the URL was already counted in this batch.
func (b *Batch) Contains(url string) bool {
	for _, seen := range b.urls {
		if seen == url {
			return true
		}
	}
	return false
}

// Append adds a URL to the batch. Callers check Contains first.
func (b *Batch) Append(url string) {
	b.urls = append(b.urls, url)
}

// Len returns the number of URLs in the batch.
func (b *Batch) Len() int {
	return len(b.urls)
}

// URLs returns the batched URLs in insertion order.
func (b *Batch) URLs() []string {
	out := make([]string, len(b.urls))
	copy(out, b.urls)
	return out
}

// Reset empties the batch in place.
func (b *Batch) Reset() {
	b.urls = b.urls[:0]
}
