package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boltresume/resume-ai/internal/services"
	"boltresume/resume-ai/internal/testutil"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestPDFParser_ExtractText_ConcatenatesPages(t *testing.T) {
	path := writeFile(t, "resume.pdf", testutil.BuildPDF("Jane Doe (Go Engineer)", "Skills: Go, Postgres"))

	text, err := services.NewPDFParserService().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "\nJane Doe (Go Engineer)\nSkills: Go, Postgres", text)
}

func TestPDFParser_ExtractTextWithMetaData(t *testing.T) {
	path := writeFile(t, "resume.pdf", testutil.BuildPDF("first", "", "third"))

	content, err := services.NewPDFParserService().ExtractTextWithMetaData(path)

	require.NoError(t, err)
	assert.Equal(t, 3, content.PageCount)
	assert.Equal(t, path, content.FilePath)
	assert.Equal(t, "\nfirst\nthird", content.Text)
}

func TestPDFParser_ImageOnly(t *testing.T) {
	path := writeFile(t, "scan.pdf", testutil.BuildPDF("", ""))

	_, err := services.NewPDFParserService().ExtractText(path)

	var extractionErr *services.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Message, "image-only")
}

func TestPDFParser_NotAPDF(t *testing.T) {
	path := writeFile(t, "notes.pdf", []byte("this is plainly not a PDF document, just some text"))

	_, err := services.NewPDFParserService().ExtractText(path)

	var parseErr *services.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestPDFParser_MissingFile(t *testing.T) {
	_, err := services.NewPDFParserService().ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))

	var parseErr *services.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
