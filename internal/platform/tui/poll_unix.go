//go:build unix

package tui

import (
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable blocks until fd has input or the timeout passes.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, int(timeout.Milliseconds()))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
