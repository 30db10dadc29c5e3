package axis

// FormatFunc renders one domain value as text.
type FormatFunc[V any] func(v V) string

// Siblings is the read-only snapshot handed to a formatter override:
// the formatters resolved before it in the chain, with the override's
// own slot left nil. A tooltip override can, for instance, delegate to
// Scale for the base text and append extra context.
type Siblings[V any] struct {
	Default FormatFunc[V]
	Scale   FormatFunc[V]
	Tooltip FormatFunc[V]
	Cursor  FormatFunc[V]
}

// OverrideFunc is a user-supplied formatter override. It receives the
// value and the already-resolved lower-priority formatters.
type OverrideFunc[V any] func(v V, others Siblings[V]) string

// Overrides carries the optional per-context formatter overrides. The
// Default slot is never overridable: it is always the scale's built-in
// formatter and the chain's ultimate fallback.
type Overrides[V any] struct {
	Scale   OverrideFunc[V]
	Tooltip OverrideFunc[V]
	Cursor  OverrideFunc[V]
}

// Chain is the resolved four-entry formatter bundle. Every slot is
// non-nil: a slot without an override falls back to the previous one
// (Default → Scale → Tooltip → Cursor).
type Chain[V any] struct {
	// Default is the scale's built-in tick formatter.
	Default FormatFunc[V]
	// Scale formats tick labels.
	Scale FormatFunc[V]
	// Tooltip formats tooltip values.
	Tooltip FormatFunc[V]
	// Cursor formats cursor readouts.
	Cursor FormatFunc[V]
}

// newChain resolves the chain outward-in. Each override is bound to a
// snapshot of the formatters resolved so far, so later levels can never
// observe (or recurse into) themselves.
func newChain[V any](def FormatFunc[V], ov Overrides[V]) Chain[V] {
	c := Chain[V]{Default: def}

	c.Scale = c.Default
	if f := ov.Scale; f != nil {
		sib := Siblings[V]{Default: c.Default}
		c.Scale = func(v V) string { return f(v, sib) }
	}

	c.Tooltip = c.Scale
	if f := ov.Tooltip; f != nil {
		sib := Siblings[V]{Default: c.Default, Scale: c.Scale}
		c.Tooltip = func(v V) string { return f(v, sib) }
	}

	c.Cursor = c.Tooltip
	if f := ov.Cursor; f != nil {
		sib := Siblings[V]{Default: c.Default, Scale: c.Scale, Tooltip: c.Tooltip}
		c.Cursor = func(v V) string { return f(v, sib) }
	}

	return c
}

// identityFormat is the band-axis default formatter: categories are
// already text.
func identityFormat(v string) string { return v }
