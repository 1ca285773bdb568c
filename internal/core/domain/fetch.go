package domain

// FetchStatus records how a mirrored collection got its current contents.
type FetchStatus int

const (
	// FetchIdle means nothing has been fetched yet.
	FetchIdle FetchStatus = iota

	// FetchSignedOut means the collection was cleared because no identity is held.
	FetchSignedOut

	// FetchLoaded means the contents are the result of a successful fetch.
	FetchLoaded

	// FetchFailed means the last fetch failed and the collection was reset to empty.
	// It is deliberately distinct from a loaded empty collection.
	FetchFailed
)

// String returns the string representation.
func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchSignedOut:
		return "signed_out"
	case FetchLoaded:
		return "loaded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}
