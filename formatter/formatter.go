// Package formatter converts markdown-flavored chat replies into styled
// HTML fragments for the frontend.
package formatter

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/profilescribe/profilescribe/profile"
)

var (
	sectionRe = regexp.MustCompile(`(?m)^###\s*(.*?)\s*$`)
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	listRe    = regexp.MustCompile(`(?m)^\s*-\s*(.*?)$`)
	listRunRe = regexp.MustCompile(`(?:<li>.*?</li>\n?)+`)
)

const responseStyle = `<style>
.chat-response {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.5;
    color: #2c3e50;
}
.chat-response .section-title {
    font-size: 1.1em;
    font-weight: 600;
    color: #1a1a1a;
    margin: 1em 0 0.5em;
}
.chat-response strong {
    color: #1a1a1a;
    font-weight: 600;
}
.chat-response .info-list {
    margin: 0.5em 0;
    padding-left: 1.5em;
}
.chat-response .info-list li {
    margin-bottom: 0.3em;
}
.chat-response br {
    margin-bottom: 0.5em;
}
</style>`

// FormatResponse converts markdown-formatted text into a clean, styled HTML
// fragment. Input is escaped first.
func FormatResponse(content string) string {
	content = html.EscapeString(content)

	content = sectionRe.ReplaceAllString(content, `<h3 class="section-title">$1</h3>`)
	content = boldRe.ReplaceAllString(content, `<strong>$1</strong>`)
	content = listRe.ReplaceAllString(content, `<li>$1</li>`)
	content = listRunRe.ReplaceAllString(content, `<ul class="info-list">$0</ul>`)
	content = strings.ReplaceAll(content, "\n", "<br>")

	return fmt.Sprintf(`<div class="chat-response">%s</div>
%s`, content, responseStyle)
}

// FormatProfileSummary renders a structured profile into the same styled
// HTML fragment the chat responses use.
func FormatProfileSummary(p *profile.Profile) string {
	var sections []string

	var basic []string
	if p.Name != "" {
		basic = append(basic, "**Name:** "+p.Name)
	}
	if p.Headline != "" {
		basic = append(basic, "**Headline:** "+p.Headline)
	}
	if p.Location != "" {
		basic = append(basic, "**Location:** "+p.Location)
	}
	if len(basic) > 0 {
		sections = append(sections, "### Basic Information\n"+strings.Join(basic, "\n"))
	}

	if p.About != "" {
		sections = append(sections, "### About\n"+p.About)
	}

	if len(p.Experience) > 0 {
		var items []string
		for _, exp := range p.Experience {
			items = append(items, fmt.Sprintf("- **%s** at %s", exp.Title, exp.Company))
			if exp.Duration != "" {
				items = append(items, "  "+exp.Duration)
			}
		}
		sections = append(sections, "### Experience\n"+strings.Join(items, "\n"))
	}

	if len(p.Education) > 0 {
		var items []string
		for _, edu := range p.Education {
			items = append(items, fmt.Sprintf("- **%s** from %s", edu.Degree, edu.School))
			if edu.Years != "" {
				items = append(items, "  "+edu.Years)
			}
		}
		sections = append(sections, "### Education\n"+strings.Join(items, "\n"))
	}

	if len(p.Skills) > 0 {
		var items []string
		for _, skill := range p.Skills {
			items = append(items, "- "+skill)
		}
		sections = append(sections, "### Skills\n"+strings.Join(items, "\n"))
	}

	return FormatResponse(strings.Join(sections, "\n\n"))
}
