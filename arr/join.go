package arr

import (
	"fmt"
	"iter"
	"net/url"
	"strings"

	"github.com/hasbyte1/go-seq-utils/kv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// Join renders the values with glue between them, wrapped in prefix and
// suffix. Values are formatted with fmt.Sprint.
//
//	Join(kv.List(1, 2, 3), ", ", "[", "]") // "[1, 2, 3]"
func Join[V any](s *kv.Seq[V], glue, prefix, suffix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	i := 0
	for v := range s.AllValues() {
		if i > 0 {
			b.WriteString(glue)
		}
		fmt.Fprint(&b, v)
		i++
	}
	b.WriteString(suffix)
	return b.String()
}

// ToURLQuery renders s as an RFC 3986 encoded query string. Nested
// sequences become bracketed names (user[name]=x). Booleans render as 1
// and 0, nil values are skipped. A non-empty namespace wraps every
// top-level key: ns[key]=v.
func ToURLQuery[V any](s *kv.Seq[V], namespace string) string {
	var parts []string
	queryParts(&parts, namespace, s.AnyEntries())
	return strings.Join(parts, "&")
}

type entries interface {
	AnyEntries() iter.Seq2[kv.Key, any]
}

func queryParts(parts *[]string, prefix string, src iter.Seq2[kv.Key, any]) {
	for k, v := range src {
		name := k.String()
		if prefix != "" {
			name = prefix + "[" + name + "]"
		}
		switch val := v.(type) {
		case nil:
		case entries:
			queryParts(parts, name, val.AnyEntries())
		case bool:
			flag := "0"
			if val {
				flag = "1"
			}
			*parts = append(*parts, queryEscape(name)+"="+flag)
		default:
			if isNil(v) {
				continue
			}
			*parts = append(*parts, queryEscape(name)+"="+queryEscape(fmt.Sprint(v)))
		}
	}
}

// queryEscape percent-encodes like url.QueryEscape but writes spaces as
// %20. QueryEscape already turns a literal plus into %2B.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
