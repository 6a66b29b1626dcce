package scrape

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ephellon/gamecatalog/internal/errors"
)

// walkKeys are the container keys whose list values hold candidate items in
// embedded payloads. Listing pages nest several product modules, so the walk
// collects from every depth rather than stopping at the first match.
var walkKeys = []string{"products", "items", "results", "tiles"}

// DefaultEmbeddedScriptID is the script element id carrying the embedded
// JSON payload on Next.js-style listing pages.
const DefaultEmbeddedScriptID = "__NEXT_DATA__"

// EmbeddedPayload extracts the embedded JSON payload delimited by the given
// script id. An empty string means the page has no such payload, which is
// not an error.
func EmbeddedPayload(html, scriptID string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("script#" + scriptID).First().Text())
}

// WalkEmbedded parses an embedded JSON payload and walks the full tree with
// an explicit worklist (bounded stack depth on adversarial payloads),
// collecting every object found in a list under one of the walk keys.
func WalkEmbedded(payload string) ([]map[string]any, error) {
	var root any
	if err := json.Unmarshal([]byte(payload), &root); err != nil {
		return nil, errors.NewParseError("embedded-data", err)
	}

	var items []map[string]any
	work := []any{root}
	for len(work) > 0 {
		node := work[len(work)-1]
		work = work[:len(work)-1]

		switch n := node.(type) {
		case map[string]any:
			for _, key := range walkKeys {
				list, ok := n[key].([]any)
				if !ok {
					continue
				}
				for _, it := range list {
					if m, ok := it.(map[string]any); ok {
						items = append(items, m)
					}
				}
			}
			// Sorted keys keep the traversal, and hence record order,
			// stable between runs.
			keys := make([]string, 0, len(n))
			for k := range n {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for i := len(keys) - 1; i >= 0; i-- {
				work = append(work, n[keys[i]])
			}
		case []any:
			for _, v := range n {
				work = append(work, v)
			}
		}
	}
	return items, nil
}
