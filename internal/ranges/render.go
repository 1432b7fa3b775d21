package ranges

import (
	"fmt"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	RENDER_TMPL_NETWORK  = "network"
	RENDER_TMPL_REGION   = "region"
	RENDER_TMPL_SERVICES = "services"
)

// Render formats entries for output. Non-verbose mode emits the bare CIDR,
// verbose mode appends the region and the space-joined service list in its
// stored order.
func Render(entries []*ConsolidatedPrefix, verbose bool) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if verbose {
			lines = append(lines, fmt.Sprintf("%s %s %s", entry.Network, entry.Region, strings.Join(entry.Services, " ")))
		} else {
			lines = append(lines, entry.Network)
		}
	}
	return lines
}

// RenderTemplate formats entries through a fasttemplate template with the
// variables {{network}}, {{region}} and {{services}}.
func RenderTemplate(entries []*ConsolidatedPrefix, template string) []string {
	t := fasttemplate.New(template, "{{", "}}")

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, t.ExecuteString(map[string]interface{}{
			RENDER_TMPL_NETWORK:  entry.Network,
			RENDER_TMPL_REGION:   entry.Region,
			RENDER_TMPL_SERVICES: strings.Join(entry.Services, " "),
		}))
	}
	return lines
}

// Summary formats the verbose-mode counters line: total raw records loaded,
// distinct consolidated networks and entries left after filtering.
func Summary(found, consolidated, matching int) string {
	return fmt.Sprintf("# %d prefixes found / %d prefixes consolidated / %d prefixes matching", found, consolidated, matching)
}
