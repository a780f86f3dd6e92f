package origin

// CollabOrigin is the WebSocket origin of the real-time collaboration backend.
const CollabOrigin = "wss://collab.da.live"

// CollabOrigin returns the configured collaboration origin. It never touches
// the cache cell.
func (r *Resolver) CollabOrigin() string {
	if r == nil {
		return CollabOrigin
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensure()
	return r.cfg.CollabOrigin
}
