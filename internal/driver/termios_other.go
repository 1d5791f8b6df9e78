//go:build !linux

package driver

func newTermios(Config) (Driver, error) {
	return nil, ErrUnsupportedPlatform
}
