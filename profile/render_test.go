package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleProfile() *Profile {
	return &Profile{
		Name:     "Jane Doe",
		Headline: "Senior Engineer",
		Location: "Berlin, Germany",
		About:    "Builds reliable systems.",
		Experience: []Experience{
			{Title: "Senior Engineer", Company: "Example Corp", Duration: "2020 - Present", Description: "Leads the platform team."},
			{Title: "Engineer", Company: "Startup GmbH", Duration: "2016 - 2020"},
		},
		Education: []Education{
			{School: "TU Berlin", Degree: "MSc", Field: "Computer Science", Years: "2014 - 2016"},
		},
		Skills:    []string{"Go", "Distributed Systems"},
		Languages: []string{"English", "German"},
		Certifications: []Certification{
			{Name: "CKA", Issuer: "CNCF", Date: "2021"},
		},
		Recommendations: []Recommendation{
			{Author: "John Smith", Relationship: "Manager", Text: "Outstanding colleague."},
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleProfile())

	for _, want := range []string{
		"# Jane Doe",
		"## Senior Engineer",
		"**Location:** Berlin, Germany",
		"### About",
		"#### Senior Engineer at Example Corp",
		"*2020 - Present*",
		"#### TU Berlin",
		"MSc in Computer Science",
		"### Skills",
		"- Go",
		"### Certifications",
		"Issued by CNCF (2021)",
		"### Languages",
		"- German",
		"#### From John Smith (Manager)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	if !strings.HasPrefix(md, "# Jane Doe") {
		t.Error("markdown must start with the profile name heading")
	}
}

func TestMarkdownOptionalSectionsOmitted(t *testing.T) {
	p := &Profile{
		Name:       "Min Imal",
		Headline:   "Intern",
		Location:   "Remote",
		About:      "-",
		Experience: []Experience{{Title: "Intern", Company: "X", Duration: "2024"}},
		Education:  []Education{{School: "Y", Degree: "BSc"}},
	}
	md := Markdown(p)

	for _, absent := range []string{"### Skills", "### Certifications", "### Languages", "### Recommendations"} {
		if strings.Contains(md, absent) {
			t.Errorf("markdown must omit empty section %q", absent)
		}
	}
}

func TestHTMLEscapesData(t *testing.T) {
	p := sampleProfile()
	p.Name = `Jane <script>alert("x")</script>`
	out := HTML(p)

	if strings.Contains(out, "<script>alert") {
		t.Error("profile data must be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped script tag")
	}
	if !strings.Contains(out, `class="profile-container"`) {
		t.Error("missing container markup")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	mdPath, htmlPath, err := Save(sampleProfile(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("markdown not written: %v", err)
	}
	if !strings.Contains(string(md), "# Jane Doe") {
		t.Error("markdown file missing content")
	}

	html, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("html not written: %v", err)
	}
	if !strings.Contains(string(html), "profile-container") {
		t.Error("html file missing content")
	}
}
