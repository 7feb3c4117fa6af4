//go:build unix

package lanstatic

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsAddrInUse reports whether err means the address was already bound.
func IsAddrInUse(err error) bool {
	return errors.Is(err, unix.EADDRINUSE)
}
