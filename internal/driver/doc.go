// Package driver adapts OS serial APIs to the small surface the session needs:
// enumerate ports, open one at a baud rate, and do bounded byte I/O on it.
//
// Three backends are available:
//
//   - "bugst" (default): go.bug.st/serial, works on Linux, macOS and Windows
//   - "tarm": github.com/tarm/serial, with /dev scanning for enumeration
//   - "termios": raw termios through golang.org/x/sys/unix (Linux only)
//
// Create one with New:
//
//	drv, err := driver.New(driver.Bugst, driver.WithReadTimeout(10*time.Millisecond))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, err := drv.Open("/dev/ttyUSB0", 9600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
// Every backend opens ports in raw 8N1 mode without flow control. Reads are
// single bounded attempts: when the read timeout expires with no data, Read
// returns (0, nil).
//
// Errors wrap the sentinels in this package, so callers can test them with
// errors.Is:
//
//	if errors.Is(err, driver.ErrDeviceInUse) {
//	    // another process holds the port
//	}
package driver
