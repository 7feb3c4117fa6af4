package lanstatic

import (
	"log/slog"
	"net"
	"time"
)

const probeTarget = "8.8.8.8:80"

// LANAddress returns the IP of the interface the OS would route external
// traffic through, or "localhost" when that cannot be determined. Nothing is
// sent; connecting a UDP socket only selects the local address.
func LANAddress() string {
	return probeLocalAddress(probeTarget)
}

func probeLocalAddress(target string) string {
	d := net.Dialer{Timeout: time.Second}
	conn, err := d.Dial("udp", target)
	if err != nil {
		slog.Debug("lan address probe failed", "target", target, "error", err)
		return "localhost"
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil || addr.IP.IsUnspecified() {
		return "localhost"
	}
	return addr.IP.String()
}
