package cache

// ScopedKeyer namespaces another keyer under a prefix. Useful when several
// projects or configurations share one cache directory.
type ScopedKeyer struct {
	prefix string
	inner  Keyer
}

// NewScopedKeyer wraps inner so all keys are scoped to prefix.
func NewScopedKeyer(prefix string, inner Keyer) *ScopedKeyer {
	return &ScopedKeyer{prefix: prefix, inner: inner}
}

func (k *ScopedKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return Hash([]byte(k.prefix + "\x00" + k.inner.LayoutKey(docHash, opts)))
}

func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return Hash([]byte(k.prefix + "\x00" + k.inner.ArtifactKey(docHash, opts)))
}

var _ Keyer = (*ScopedKeyer)(nil)
