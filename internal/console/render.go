package console

import (
	"fmt"
	"strings"

	"github.com/theflywheel/chainhash"
)

const rule = "----------------------------"

// RenderTable formats every bucket on its own line as
// "Index     i: {key: value} {key: value} ", empty buckets included
func RenderTable(views []chainhash.BucketView) string {
	var sb strings.Builder
	for _, v := range views {
		fmt.Fprintf(&sb, "Index %5d: ", v.Index)
		for _, e := range v.Entries {
			fmt.Fprintf(&sb, "{%s: %s} ", e.Key, e.Value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderSummary is the one-line footer under the table
func RenderSummary(t *chainhash.Table) string {
	return fmt.Sprintf("capacity %d, entries %d, load factor %.2f, digest %016x",
		t.Capacity(), t.Len(), t.LoadFactor(), t.Digest())
}

func renderHeader(title string) string {
	return headerStyle.Render(rule+"\n\n"+title+"\n"+rule) + "\n\n"
}
