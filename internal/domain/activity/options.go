package activity

// ListOptions provides filtering options for listing feed entries.
type ListOptions struct {
	Kind   *Kind
	Limit  int
	Offset int
}
