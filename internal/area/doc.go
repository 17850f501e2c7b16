// Package area resolves entities to the room they belong to.
//
// Home Assistant scatters the entity→room relationship across three
// registries: areas (the rooms themselves), devices (which may declare an
// area) and entities (which may declare an area directly, or point at an
// owning device). The resolver joins those three reads into a single
// entity-id → area-name lookup per request.
//
// Assignment priority:
//
//  1. The entity's own area assignment.
//  2. The owning device's area assignment.
//  3. The Unassigned pseudo-area.
//
// Any of the three registry fetches may fail independently (registries can
// be disabled or inaccessible). A failed fetch never aborts the read: the
// failure is logged and the registry treated as empty, so affected entities
// degrade to Unassigned instead of the whole report failing.
package area
