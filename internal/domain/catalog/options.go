package catalog

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithExcludedIDs drops the given identifiers from the catalog. Used for
// upstream records known to be duplicated.
func WithExcludedIDs(ids ...string) Option {
	return func(c *Catalog) {
		for _, id := range ids {
			if id != "" {
				c.excluded[id] = struct{}{}
			}
		}
	}
}
