package domain

// RenderOptions controls how a document is rendered to text.
type RenderOptions struct {
	// Width is the maximum line width in display columns.
	// Zero or negative means the caller has no preference.
	Width int
}

// EffectiveWidth returns the wrap width to use for input.
// Without a caller preference the input length in bytes is used,
// so the output is effectively unwrapped.
func (o RenderOptions) EffectiveWidth(input string) int {
	if o.Width > 0 {
		return o.Width
	}
	return len(input)
}
