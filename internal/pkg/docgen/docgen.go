// Package docgen renders the report and newsletter HTML documents that are
// synthesized when a program is submitted. Both documents are a deterministic
// function of the program/toli/author snapshot captured in the view model.
package docgen

import (
	"fmt"
	"html/template"
	"strings"
)

// MaxGalleryImages caps how many program photos are embedded in a document.
const MaxGalleryImages = 6

var (
	reportTmpl     = template.Must(template.New("report").Parse(reportTemplate))
	newsletterTmpl = template.Must(template.New("newsletter").Parse(newsletterTemplate))
)

// ProgramView is the snapshot both documents are rendered from.
type ProgramView struct {
	Title             string
	ProgramNo         int
	ProgramType       string
	Date              string
	Location          string
	ToliName          string
	StudentName       string
	ScholarNo         string
	OrganizerName     string
	OrganizerContact  string
	ParticipantsCount int
	Achievements      string
	Images            []string
}

// RenderReport renders the internal record-keeping document.
func RenderReport(view ProgramView) (string, error) {
	return render(reportTmpl, view)
}

// RenderNewsletter renders the public-facing document.
func RenderNewsletter(view ProgramView) (string, error) {
	return render(newsletterTmpl, view)
}

func render(tmpl *template.Template, view ProgramView) (string, error) {
	if len(view.Images) > MaxGalleryImages {
		view.Images = view.Images[:MaxGalleryImages]
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
