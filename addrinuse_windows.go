//go:build windows

package lanstatic

import (
	"errors"

	"golang.org/x/sys/windows"
)

// IsAddrInUse reports whether err means the address was already bound.
func IsAddrInUse(err error) bool {
	return errors.Is(err, windows.WSAEADDRINUSE)
}
