// Package htmlsanitize strips unsafe HTML from authored content.
//
// Module bodies, glossary definitions, and quiz explanations are authored
// HTML (seeded or edited out of band). Everything of that kind goes through
// Sanitize before it reaches a template as template.HTML.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// contentPolicy is bluemonday's UGC policy plus the classes the codex
// templates style content blocks with.
func contentPolicy() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("div", "span", "p", "table", "code", "pre")
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// Sanitize returns s with scripts, event handlers, and unsafe URLs removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return contentPolicy().Sanitize(s)
}

// SanitizeHTML sanitizes s and marks the result safe for template rendering.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
