package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() ProgramView {
	return ProgramView{
		Title:             "Tree plantation drive",
		ProgramNo:         3,
		ProgramType:       "plantation",
		Date:              "15 August 2026",
		Location:          "Indore, MP",
		ToliName:          "Toli T-01",
		StudentName:       "Asha Verma",
		ScholarNo:         "21BCS101",
		OrganizerName:     "Gram Panchayat",
		OrganizerContact:  "9876543210",
		ParticipantsCount: 120,
		Achievements:      "Planted 200 saplings along the river bank.",
		Images:            []string{"programs/p1/a.jpg", "programs/p1/b.jpg"},
	}
}

func TestRenderReport(t *testing.T) {
	html, err := RenderReport(sampleView())
	require.NoError(t, err)

	assert.Contains(t, html, "Tree plantation drive")
	assert.Contains(t, html, "Asha Verma")
	assert.Contains(t, html, "21BCS101")
	assert.Contains(t, html, "120")
	assert.Contains(t, html, `src="/uploads/programs/p1/a.jpg"`)
}

func TestRenderNewsletter(t *testing.T) {
	html, err := RenderNewsletter(sampleView())
	require.NoError(t, err)

	assert.Contains(t, html, "DISHA Newsletter")
	assert.Contains(t, html, "Toli T-01")
	assert.Contains(t, html, "reaching 120 participants")
}

func TestRenderEscapesUserInput(t *testing.T) {
	view := sampleView()
	view.Title = `<script>alert("x")</script>`
	view.Achievements = `a < b & c`

	html, err := RenderReport(view)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &lt; b &amp; c")
}

func TestRenderCapsGalleryImages(t *testing.T) {
	view := sampleView()
	view.Images = nil
	for i := 0; i < MaxGalleryImages+4; i++ {
		view.Images = append(view.Images, "programs/p1/img.jpg")
	}

	html, err := RenderNewsletter(view)
	require.NoError(t, err)
	assert.Equal(t, MaxGalleryImages, strings.Count(html, "<img "))
}

func TestRenderWithoutImagesOmitsGallery(t *testing.T) {
	view := sampleView()
	view.Images = nil

	html, err := RenderReport(view)
	require.NoError(t, err)
	assert.NotContains(t, html, "Photo Gallery")
}
