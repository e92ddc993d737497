package profile

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// Artifact file names under the output directory.
const (
	MarkdownFile = "structured_profile.md"
	HTMLFile     = "structured_profile.html"
)

// Markdown renders the profile as a markdown resume.
func Markdown(p *Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n## %s\n**Location:** %s\n\n### About\n%s\n\n### Experience\n",
		p.Name, p.Headline, p.Location, p.About)

	for _, exp := range p.Experience {
		fmt.Fprintf(&b, "\n#### %s at %s\n*%s*\n\n%s\n", exp.Title, exp.Company, exp.Duration, exp.Description)
	}

	b.WriteString("\n### Education\n")
	for _, edu := range p.Education {
		degree := edu.Degree
		if edu.Field != "" {
			degree += " in " + edu.Field
		}
		fmt.Fprintf(&b, "\n#### %s\n%s\n", edu.School, degree)
		if edu.Years != "" {
			fmt.Fprintf(&b, "*%s*\n", edu.Years)
		}
	}

	if len(p.Skills) > 0 {
		b.WriteString("\n### Skills\n")
		for _, skill := range p.Skills {
			fmt.Fprintf(&b, "- %s\n", skill)
		}
	}

	if len(p.Certifications) > 0 {
		b.WriteString("\n### Certifications\n")
		for _, cert := range p.Certifications {
			fmt.Fprintf(&b, "\n#### %s\nIssued by %s", cert.Name, cert.Issuer)
			if cert.Date != "" {
				fmt.Fprintf(&b, " (%s)", cert.Date)
			}
			b.WriteString("\n")
		}
	}

	if len(p.Languages) > 0 {
		b.WriteString("\n### Languages\n")
		for _, lang := range p.Languages {
			fmt.Fprintf(&b, "- %s\n", lang)
		}
	}

	if len(p.Recommendations) > 0 {
		b.WriteString("\n### Recommendations\n")
		for _, rec := range p.Recommendations {
			fmt.Fprintf(&b, "\n#### From %s (%s)\n%s\n", rec.Author, rec.Relationship, rec.Text)
		}
	}

	return b.String()
}

// HTML renders the profile as a standalone fragment for the viewer page.
// All profile data is escaped.
func HTML(p *Profile) string {
	esc := html.EscapeString
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="profile-container">
<header class="profile-header">
<h1 class="profile-name">%s</h1>
<h2 class="profile-headline">%s</h2>
<div class="profile-location">%s</div>
</header>
`, esc(p.Name), esc(p.Headline), esc(p.Location))

	fmt.Fprintf(&b, `<section class="profile-section">
<h3>About</h3>
<div class="profile-about">%s</div>
</section>
`, esc(p.About))

	b.WriteString(`<section class="profile-section">
<h3>Experience</h3>
<div class="experience-list">
`)
	for _, exp := range p.Experience {
		fmt.Fprintf(&b, `<div class="experience-item">
<div class="experience-header">
<h4>%s</h4>
<div class="company-name">%s</div>
<div class="duration">%s</div>
</div>
<div class="experience-description">%s</div>
</div>
`, esc(exp.Title), esc(exp.Company), esc(exp.Duration), esc(exp.Description))
	}
	b.WriteString("</div>\n</section>\n")

	b.WriteString(`<section class="profile-section">
<h3>Education</h3>
<div class="education-list">
`)
	for _, edu := range p.Education {
		degree := edu.Degree
		if edu.Field != "" {
			degree += " in " + edu.Field
		}
		fmt.Fprintf(&b, `<div class="education-item">
<div class="education-header">
<h4>%s</h4>
<div class="degree">%s</div>
`, esc(edu.School), esc(degree))
		if edu.Years != "" {
			fmt.Fprintf(&b, `<div class="years">%s</div>
`, esc(edu.Years))
		}
		b.WriteString("</div>\n</div>\n")
	}
	b.WriteString("</div>\n</section>\n")

	if len(p.Skills) > 0 {
		b.WriteString(`<section class="profile-section">
<h3>Skills</h3>
<div class="skills-list">
`)
		for _, skill := range p.Skills {
			fmt.Fprintf(&b, `<span class="skill-tag">%s</span>
`, esc(skill))
		}
		b.WriteString("</div>\n</section>\n")
	}

	if len(p.Certifications) > 0 {
		b.WriteString(`<section class="profile-section">
<h3>Certifications</h3>
<div class="certifications-list">
`)
		for _, cert := range p.Certifications {
			fmt.Fprintf(&b, `<div class="certification-item">
<h4>%s</h4>
<div class="certification-meta">
<span class="issuer">Issued by %s</span>
`, esc(cert.Name), esc(cert.Issuer))
			if cert.Date != "" {
				fmt.Fprintf(&b, `<span class="date">%s</span>
`, esc(cert.Date))
			}
			b.WriteString("</div>\n</div>\n")
		}
		b.WriteString("</div>\n</section>\n")
	}

	if len(p.Languages) > 0 {
		b.WriteString(`<section class="profile-section">
<h3>Languages</h3>
<div class="languages-list">
`)
		for _, lang := range p.Languages {
			fmt.Fprintf(&b, `<span class="language-tag">%s</span>
`, esc(lang))
		}
		b.WriteString("</div>\n</section>\n")
	}

	if len(p.Recommendations) > 0 {
		b.WriteString(`<section class="profile-section recommendations-section">
<h3>Recommendations</h3>
<div class="recommendations-list">
`)
		for _, rec := range p.Recommendations {
			fmt.Fprintf(&b, `<div class="recommendation-item">
<div class="recommendation-header">
<span class="recommender-name">%s</span>
<span class="relationship">(%s)</span>
</div>
<div class="recommendation-content">&quot;%s&quot;</div>
</div>
`, esc(rec.Author), esc(rec.Relationship), esc(rec.Text))
		}
		b.WriteString("</div>\n</section>\n")
	}

	b.WriteString("</div>\n")
	return b.String()
}

// Save writes the markdown and HTML renderings of the profile into
// outputDir, creating it if needed. It returns the written file paths.
func Save(p *Profile, outputDir string) (mdPath, htmlPath string, err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output dir: %w", err)
	}

	mdPath = filepath.Join(outputDir, MarkdownFile)
	if err := os.WriteFile(mdPath, []byte(Markdown(p)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write markdown: %w", err)
	}

	htmlPath = filepath.Join(outputDir, HTMLFile)
	if err := os.WriteFile(htmlPath, []byte(HTML(p)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write html: %w", err)
	}

	return mdPath, htmlPath, nil
}
