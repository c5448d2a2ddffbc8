package skemawire

import (
	"fmt"
	"strconv"
	"strings"
)

// Issue parameter keys.
const (
	ParamType   = "type"   // declared schema type
	ParamModel  = "model"  // model name
	ParamFormat = "format" // format name
	ParamKey    = "key"    // object key
)

// PathRef locates a value inside the tree being marshaled and creates Issues
// at that location. Paths render as RFC 6901 JSON Pointers.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the PathRef of a top-level value ("/").
func Root() PathRef { return &pathRef{} }

// pathRef is one step of a path. Children share their parent, so descending
// into a member costs one allocation and the pointer is only rendered when an
// Issue is built.
type pathRef struct {
	parent *pathRef
	token  string
	depth  int
}

func (p *pathRef) Field(name string) PathRef {
	return &pathRef{parent: p, token: escapeToken(name), depth: p.depth + 1}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parent: p, token: strconv.Itoa(i), depth: p.depth + 1}
}

func (p *pathRef) Pointer() string {
	if p.depth == 0 {
		return "/"
	}
	tokens := make([]string, p.depth)
	for n := p; n.depth > 0; n = n.parent {
		tokens[n.depth-1] = n.token
	}
	return "/" + strings.Join(tokens, "/")
}

// Issue builds an Issue at p. kv holds alternating Param* keys and values.
func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	var params map[string]any
	if len(kv) >= 2 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// escapeToken applies RFC 6901 escaping: '~' becomes "~0", '/' becomes "~1".
func escapeToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
