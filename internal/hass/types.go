package hass

import "time"

// EntityState is a snapshot of one entity as reported by GET /api/states.
// Snapshots are immutable and fetched fresh per request; they are never
// cached across protocol requests.
type EntityState struct {
	EntityID    string     `json:"entity_id"`
	State       string     `json:"state"`
	Attributes  Attributes `json:"attributes"`
	LastChanged time.Time  `json:"last_changed"`
}

// Attributes holds the subset of entity attributes the bridge renders.
// Optional numeric attributes use pointers so absence is distinguishable
// from zero (a light that is off can legitimately report brightness 0).
type Attributes struct {
	FriendlyName string `json:"friendly_name"`
	Brightness   *int   `json:"brightness"`
	ColorTemp    *int   `json:"color_temp"`
	RGBColor     []int  `json:"rgb_color"`
	DeviceClass  string `json:"device_class"`
}

// Name returns the friendly name, falling back to the entity id when the
// upstream attribute is missing.
func (s EntityState) Name() string {
	if s.Attributes.FriendlyName != "" {
		return s.Attributes.FriendlyName
	}
	return s.EntityID
}

// Area is one entry of the area registry.
type Area struct {
	AreaID string `json:"area_id"`
	Name   string `json:"name"`
}

// Device is one entry of the device registry. AreaID is empty when the
// device has no area assignment.
type Device struct {
	ID     string `json:"id"`
	AreaID string `json:"area_id"`
}

// Entity is one entry of the entity registry. AreaID is the entity's own
// direct area assignment; DeviceID links to the owning device, either of
// which may be empty.
type Entity struct {
	EntityID string `json:"entity_id"`
	DeviceID string `json:"device_id"`
	AreaID   string `json:"area_id"`
}
