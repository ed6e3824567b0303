package driving

// Converter turns HTML documents into plain text.
type Converter interface {
	// Convert returns the text rendering of html wrapped at width columns.
	// A width <= 0 means no preference. Failures are logged and yield "";
	// they are never returned to the caller.
	Convert(html string, width int) string

	// Render is the strict variant of Convert. It returns an error wrapping
	// domain.ErrParseFailure instead of an empty string on failure.
	Render(html string, width int) (string, error)
}
