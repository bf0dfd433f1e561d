//go:build unix

package listener

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// control enables SO_REUSEADDR so a listener can share port 9 with other
// local receivers.
func control(_, _ string, c syscall.RawConn) error {
	var sockErr error
	if err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	}); err != nil {
		return err
	}
	return sockErr
}
