package entities

// AuthorSummary is the read-only author view fetched from the authors
// registry for enrichment. It is never persisted by this context.
type AuthorSummary struct {
	AuthorID     string
	FullName     string
	Email        string
	Biography    string
	Organization string
}
