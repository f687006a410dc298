package search

// State holds search state
type State struct {
	Query     string // raw text as typed
	Committed string // lower-cased query the active catalog was filtered with
	Filtered  bool   // whether the active catalog is a filtered subset
}
