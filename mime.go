package lanstatic

import (
	"mime"
	"path"
	"strings"
)

const defaultType = "application/octet-stream"

// overrides are checked in order before the system table. Several platforms
// ship mime tables that get scripts and web fonts wrong.
var overrides = []struct {
	suffix string
	ctype  string
}{
	{suffix: ".js", ctype: "application/javascript"},
	{suffix: ".css", ctype: "text/css"},
	{suffix: ".json", ctype: "application/json"},
	{suffix: ".woff2", ctype: "font/woff2"},
	{suffix: ".woff", ctype: "font/woff"},
	{suffix: ".ttf", ctype: "font/ttf"},
}

// ResolveType returns the Content-Type to serve for name.
func ResolveType(name string) string {
	for _, o := range overrides {
		if strings.HasSuffix(name, o.suffix) {
			return o.ctype
		}
	}
	if ctype := mime.TypeByExtension(path.Ext(name)); ctype != "" {
		return ctype
	}
	return defaultType
}
