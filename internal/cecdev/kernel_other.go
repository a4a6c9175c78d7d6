//go:build !linux

package cecdev

// Initialise always fails: only the Linux kernel CEC framework is supported
func Initialise(cfg Configuration) (Library, error) {
	return nil, ErrUnsupported
}
