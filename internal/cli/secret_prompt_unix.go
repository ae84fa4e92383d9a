//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// withEchoDisabled turns terminal echo off around read and restores the
// previous mode afterwards.
func withEchoDisabled(file *os.File, read func() error) error {
	fd := int(file.Fd())
	saved, err := loadTerminalState(fd)
	if err != nil {
		return err
	}

	silent := *saved
	silent.Lflag &^= unix.ECHO
	if err := storeTerminalState(fd, &silent); err != nil {
		return err
	}
	defer func() {
		_ = storeTerminalState(fd, saved)
	}()

	return read()
}
