package lanstatic

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

var (
	bannerTitle   = color.New(color.FgGreen, color.Bold)
	bannerHeading = color.New(color.FgCyan, color.Bold)
	bannerURL     = color.New(color.FgYellow)
)

var features = []string{
	"CORS enabled for API calls",
	"Proper MIME types for all assets",
	"External network access",
	"Mobile device compatibility",
}

func firewallHint(goos string, port int) []string {
	switch goos {
	case "windows":
		return []string{
			"FIREWALL (Windows): if others can't connect, allow lanstatic through the firewall or run:",
			fmt.Sprintf(`   netsh advfirewall firewall add rule name="lanstatic" dir=in action=allow protocol=TCP localport=%d`, port),
		}
	case "darwin":
		return []string{
			"FIREWALL (macOS): if others can't connect, allow incoming connections for lanstatic in",
			"   System Settings > Network > Firewall > Options",
		}
	default:
		return []string{
			"FIREWALL (Linux): if others can't connect, open the port, e.g.:",
			fmt.Sprintf("   sudo ufw allow %d/tcp", port),
			fmt.Sprintf("   sudo firewall-cmd --add-port=%d/tcp", port),
		}
	}
}

// Report writes the startup banner for the bound server to w.
func (s *Server) Report(w io.Writer) {
	s.report(w, runtime.GOOS)
}

func (s *Server) report(w io.Writer, goos string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	bannerTitle.Fprintln(w, "🚀 LANSTATIC SERVER STARTED")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📁 Serving directory: %s\n", s.config.RootDir)
	fmt.Fprintf(w, "🌐 Port: %d\n", s.Port())
	fmt.Fprintln(w)
	bannerHeading.Fprintln(w, "📱 ACCESS URLS:")
	fmt.Fprintf(w, "   Local:    %s\n", bannerURL.Sprint(s.LocalURL()))
	fmt.Fprintf(w, "   Network:  %s\n", bannerURL.Sprint(s.NetworkURL()))
	fmt.Fprintln(w)
	bannerHeading.Fprintln(w, "🔗 EXTERNAL ACCESS:")
	fmt.Fprintln(w, "   Share this URL with others on your network:")
	fmt.Fprintf(w, "   %s\n", bannerURL.Sprint(s.NetworkURL()))
	fmt.Fprintln(w)
	bannerHeading.Fprintln(w, "📋 MOBILE ACCESS:")
	fmt.Fprintln(w, "   On mobile devices connected to the same WiFi:")
	fmt.Fprintf(w, "   %s\n", bannerURL.Sprint(s.NetworkURL()))
	fmt.Fprintln(w)
	bannerHeading.Fprintln(w, "⚡ FEATURES:")
	for _, f := range features {
		fmt.Fprintf(w, "   • %s\n", f)
	}
	fmt.Fprintln(w)
	for _, line := range firewallHint(goos, s.Port()) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🛑 Press Ctrl+C to stop the server")
	fmt.Fprintln(w, rule)
}
