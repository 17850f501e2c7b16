// Package color classifies RGB triples against a small fixed palette of
// reference colours.
//
// The classifier is used by the state report to label a light's rgb_color
// attribute with a human-friendly name ("Red", "Warm White", ...). Matching
// is Euclidean distance in RGB space against each palette entry's own
// tolerance radius, iterated in a fixed order with the first match winning.
//
// The first-match rule means overlapping tolerance spheres (the near-white
// entries, in particular) are resolved by palette order rather than by
// closest distance. That behaviour is load-bearing: downstream consumers
// depend on stable labels, so the order must not be "fixed" to
// nearest-overall.
package color
