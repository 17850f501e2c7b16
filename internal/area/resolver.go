package area

import (
	"context"

	"github.com/nerrad567/gray-logic-assist/internal/hass"
	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/logging"
)

// Unassigned is the pseudo-area for entities with no resolvable room.
const Unassigned = "Unassigned"

// RegistryClient is the subset of the Home Assistant client the resolver
// depends on.
type RegistryClient interface {
	AreaRegistry(ctx context.Context) ([]hass.Area, error)
	DeviceRegistry(ctx context.Context) ([]hass.Device, error)
	EntityRegistry(ctx context.Context) ([]hass.Entity, error)
}

// Resolver builds per-request entity→area lookups from the upstream
// registries. It holds no state between requests.
type Resolver struct {
	client RegistryClient
	log    *logging.Logger
}

// NewResolver creates a Resolver using the given client.
func NewResolver(client RegistryClient, log *logging.Logger) *Resolver {
	return &Resolver{
		client: client,
		log:    log.With("component", "area"),
	}
}

// Resolve fetches the three registries and returns an entity-id → area-name
// lookup. Registry fetch failures are absorbed here: each failing registry
// is logged and treated as empty, which makes the affected entities resolve
// to Unassigned. Entities absent from the lookup are Unassigned too; use
// Name to read the lookup with that fallback applied.
func (r *Resolver) Resolve(ctx context.Context) map[string]string {
	areas, err := r.client.AreaRegistry(ctx)
	if err != nil {
		r.log.Warn("area registry unavailable, affected entities resolve to Unassigned", "error", err)
		areas = nil
	}

	devices, err := r.client.DeviceRegistry(ctx)
	if err != nil {
		r.log.Warn("device registry unavailable, affected entities resolve to Unassigned", "error", err)
		devices = nil
	}

	entities, err := r.client.EntityRegistry(ctx)
	if err != nil {
		r.log.Warn("entity registry unavailable, affected entities resolve to Unassigned", "error", err)
		entities = nil
	}

	return buildLookup(areas, devices, entities)
}

// Name returns the area name for an entity id from a Resolve lookup,
// defaulting to Unassigned.
func Name(lookup map[string]string, entityID string) string {
	if name, ok := lookup[entityID]; ok {
		return name
	}
	return Unassigned
}

// buildLookup joins the three registries. Entity-level area assignment takes
// priority over the owning device's assignment; an area id that does not
// appear in the area registry counts as no assignment.
func buildLookup(areas []hass.Area, devices []hass.Device, entities []hass.Entity) map[string]string {
	areaNames := make(map[string]string, len(areas))
	for _, a := range areas {
		areaNames[a.AreaID] = a.Name
	}

	deviceArea := make(map[string]string, len(devices))
	for _, d := range devices {
		if d.AreaID != "" {
			deviceArea[d.ID] = d.AreaID
		}
	}

	lookup := make(map[string]string, len(entities))
	for _, e := range entities {
		areaID := e.AreaID
		if areaID == "" {
			areaID = deviceArea[e.DeviceID]
		}

		if name, ok := areaNames[areaID]; ok && areaID != "" {
			lookup[e.EntityID] = name
		} else {
			lookup[e.EntityID] = Unassigned
		}
	}

	return lookup
}
