package analyzer

// Entry is a keyword with its visit count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable counts qualifying keywords across one batch of URLs.
// It remembers the order in which keywords first qualified so that ties
// resolve deterministically: among equally frequent keywords the one
// recorded first wins.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		counts: make(map[string]int),
	}
}

// Record applies the inclusion rule to each keyword and increments the
// count of those that qualify. Keywords that do not qualify are ignored
// silently.
func (t *FrequencyTable) Record(keywords []string) {
	for _, word := range keywords {
		if !Included(word) {
			continue
		}
		if _, seen := t.counts[word]; !seen {
			t.order = append(t.order, word)
		}
		t.counts[word]++
	}
}

// MostFrequent returns the entry with the highest count, or nil when the
// table is empty. First-recorded-wins on ties.
func (t *FrequencyTable) MostFrequent() *Entry {
	if len(t.counts) == 0 {
		return nil
	}

	best := Entry{}
	for _, word := range t.order {
		if count := t.counts[word]; count > best.Count {
			best = Entry{Word: word, Count: count}
		}
	}
	return &best
}

// Count returns the current count for a keyword.
func (t *FrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct counted keywords.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Reset clears all counts and insertion order, starting a fresh batch.
func (t *FrequencyTable) Reset() {
	t.counts = make(map[string]int)
	t.order = t.order[:0]
}
