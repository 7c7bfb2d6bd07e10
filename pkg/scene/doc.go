// Package scene defines the editable scene description: the global render
// parameters (Config), the placed models (ModelEntry) and the ordered
// collection that owns them. Every numeric field is kept as the raw string the
// user typed so an invalid edit can still be shown and re-edited; coercion to
// typed values happens only when the scene is packed for the renderer (see
// pkg/pack). Validation produces fixed-shape validity records rather than
// error messages, the presentation layer decides how to surface them.
package scene
