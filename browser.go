package lanstatic

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/buildkite/shellwords"
)

// browserCommand builds the argv that opens url. A non-empty browserEnv (the
// $BROWSER variable) takes precedence; its first list entry is split into
// words and "%s" is replaced by url, or url is appended when absent.
func browserCommand(goos, browserEnv, url string) ([]string, error) {
	for _, entry := range strings.Split(browserEnv, string(os.PathListSeparator)) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		words, err := shellwords.Split(entry)
		if err != nil {
			return nil, fmt.Errorf("parse BROWSER %q: %w", entry, err)
		}
		if len(words) == 0 {
			continue
		}
		substituted := false
		for i, w := range words {
			if strings.Contains(w, "%s") {
				words[i] = strings.ReplaceAll(w, "%s", url)
				substituted = true
			}
		}
		if !substituted {
			words = append(words, url)
		}
		return words, nil
	}
	switch goos {
	case "darwin":
		return []string{"open", url}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}, nil
	default:
		return []string{"xdg-open", url}, nil
	}
}

// OpenBrowser starts the operator's browser on url without waiting for it.
func OpenBrowser(url string) error {
	argv, err := browserCommand(runtime.GOOS, os.Getenv("BROWSER"), url)
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	slog.Debug("browser started", "cmd", argv, "pid", cmd.Process.Pid)
	go cmd.Wait()
	return nil
}
