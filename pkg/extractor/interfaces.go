package extractor

// KeywordExtractor derives candidate keywords from a visited URL.
type KeywordExtractor interface {
	Extract(url string) ([]string, error)
	SetFilters(filters []Filter)
	Normalize(keyword string) string
}

type Filter interface {
	Apply(keywords []string) []string
	Name() string
}
