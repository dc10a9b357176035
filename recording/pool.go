package recording

// ResourcePool stores paths referenced by recording commands.
// Each Add operation clones the path so that later mutation by the caller
// cannot change a finished recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths []*Path
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*Path, 0, 64),
	}
}

// AddPath adds a path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}
