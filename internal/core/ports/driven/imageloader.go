package driven

// ImageLoader turns a selected profile photo into a display string.
// Implementations reject oversized or non-image files and otherwise
// produce a base64 data URL suitable for direct display; the core
// treats the result as opaque.
type ImageLoader interface {
	// Load reads the file at path and returns its data URL.
	Load(path string) (string, error)
}
