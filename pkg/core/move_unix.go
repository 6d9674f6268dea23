//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build darwin dragonfly freebsd linux netbsd openbsd solaris

package core

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/oneconcern/txtrip/pkg/errors"
)

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return linkErr.Err == unix.EXDEV
}
