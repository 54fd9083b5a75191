// Copyright © 2026 The lovels authors

package render

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/lovely2d/lovels/catalog"
)

const (
	DefaultWikiBase = "https://love2d.org/wiki/"
	DefaultAPIBase  = "https://love2d-community.github.io/love-api/#"
	DefaultRoot     = "love"
)

// Links builds the outbound documentation URLs of an entry. Bases are
// prefixed verbatim, so they carry their own trailing separator.
type Links struct {
	WikiBase string
	APIBase  string
	Root     string
}

// DefaultLinks points at the LÖVE wiki and the community API browser.
func DefaultLinks() Links {
	return Links{WikiBase: DefaultWikiBase, APIBase: DefaultAPIBase, Root: DefaultRoot}
}

// For returns the wiki and API links of e. Variables have no links.
//
//	module          wiki/<root>.<module>             api/<module>
//	type            wiki/<Type>                      api/type_<Type>
//	Type:method     wiki/<Type>:<method>             api/<Type>_<method>
//	module function wiki/<root>.<module>.<function>  api/<module>_<function>
//	root function   wiki/<root>.<function>           api/<function>
func (l Links) For(e *catalog.Entry) (wiki, api string, ok bool) {
	if e == nil {
		return "", "", false
	}
	name := displayName(e)
	switch e.PropType {
	case catalog.Module:
		return l.WikiBase + l.Root + "." + name, l.APIBase + name, true
	case catalog.Type:
		return l.WikiBase + name, l.APIBase + "type_" + name, true
	case catalog.Function:
		if owner, _, isMethod := strings.Cut(e.Key, ":"); isMethod {
			typeName := owner
			if i := strings.LastIndex(owner, "."); i >= 0 {
				typeName = owner[i+1:]
			}
			return l.WikiBase + typeName + ":" + name, l.APIBase + typeName + "_" + name, true
		}
		parts := strings.Split(e.Key, ".")
		if len(parts) >= 3 {
			module := parts[1]
			return l.WikiBase + l.Root + "." + module + "." + name, l.APIBase + module + "_" + name, true
		}
		return l.WikiBase + l.Root + "." + name, l.APIBase + name, true
	}
	return "", "", false
}

// ShowDocumentationCommand is the command a deep link invokes. Its single
// argument is the catalog key to render.
const ShowDocumentationCommand = "lovels.showDocumentation"

const deepLinkPrefix = "command:" + ShowDocumentationCommand + "?"

// DeepLink encodes key as a reference that resolves back into a hover
// render of the same entry.
func DeepLink(key string) string {
	args, _ := json.Marshal([]string{key})
	return deepLinkPrefix + url.QueryEscape(string(args))
}

// ParseDeepLink returns the key encoded by DeepLink.
func ParseDeepLink(ref string) (string, bool) {
	raw, ok := strings.CutPrefix(ref, deepLinkPrefix)
	if !ok {
		return "", false
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", false
	}
	var args []string
	if err := json.Unmarshal([]byte(decoded), &args); err != nil || len(args) != 1 || args[0] == "" {
		return "", false
	}
	return args[0], true
}
