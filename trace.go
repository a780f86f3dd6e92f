package origin

import "encoding/json"

// Resolution captures how a single call arrived at its origin.
type Resolution struct {
	Origin     string    `json:"origin"`
	Source     Source    `json:"source"`
	Directive  Directive `json:"directive,omitempty"`
	Href       string    `json:"href,omitempty"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
	// Pinned reports whether the cell holds a value after the call.
	Pinned bool `json:"pinned"`
}

// ToJSON serialises the resolution for logging or transport helpers.
func (r Resolution) ToJSON() ([]byte, error) {
	type alias Resolution
	return json.Marshal(alias(r))
}

// ResolutionFromJSON deserialises a payload produced by ToJSON.
func ResolutionFromJSON(payload []byte) (Resolution, error) {
	type alias Resolution
	var res alias
	if err := json.Unmarshal(payload, &res); err != nil {
		return Resolution{}, err
	}
	return Resolution(res), nil
}
