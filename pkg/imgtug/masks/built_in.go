package masks

// DefaultImagePatterns is what the browser lists when nothing is configured.
var DefaultImagePatterns = []string{"*.png"}

// Images returns the built-in mask for supported image files.
func Images() *Mask {
	m, err := NewMask("Images", DefaultImagePatterns...)
	if err != nil {
		panic(err)
	}
	return m
}
