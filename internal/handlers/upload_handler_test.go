package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boltresume/resume-ai/internal/handlers"
	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
	"boltresume/resume-ai/internal/testutil"
	"boltresume/resume-ai/mocks"
)

const testMaxFileSize = 1024 * 1024

func newUploadApp(t *testing.T, parser services.PDFParserService) (*fiber.App, string) {
	t.Helper()

	dir := t.TempDir()
	app := fiber.New(fiber.Config{
		BodyLimit:    handlers.UploadBodyLimit(testMaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Post("/api/v1/parse-pdf", handlers.NewUploadHandler(services.NewStorageService(dir), parser, testMaxFileSize).HandleParsePDF)
	return app, dir
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadHandler_RealPDF(t *testing.T) {
	app, dir := newUploadApp(t, services.NewPDFParserService())

	req := multipartRequest(t, "/api/v1/parse-pdf", "file", "cv.pdf", "application/pdf", testutil.BuildPDF("Jane Doe", "Go, SQL"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body models.ParsedDocument
	decodeBody(t, resp, &body)
	assert.Equal(t, "\nJane Doe\nGo, SQL", body.Text)
	assertDirEmpty(t, dir)
}

func TestUploadHandler_NoFile(t *testing.T) {
	parser := new(mocks.MockPDFParserService)
	app, _ := newUploadApp(t, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse-pdf", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "No file uploaded.", body.Error)
}

func TestUploadHandler_WrongType(t *testing.T) {
	parser := new(mocks.MockPDFParserService)
	app, _ := newUploadApp(t, parser)

	req := multipartRequest(t, "/api/v1/parse-pdf", "file", "cv.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("PK..."))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid file type. Please upload a PDF.", body.Error)
	parser.AssertNotCalled(t, "ExtractText", mock.Anything)
}

func TestUploadHandler_TooLarge(t *testing.T) {
	parser := new(mocks.MockPDFParserService)
	app, _ := newUploadApp(t, parser)

	req := multipartRequest(t, "/api/v1/parse-pdf", "file", "cv.pdf", "application/pdf", make([]byte, testMaxFileSize+1))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, fmt.Sprintf("File too large. Max size: %d bytes", testMaxFileSize), body.Error)
	parser.AssertNotCalled(t, "ExtractText", mock.Anything)
}

func TestUploadBodyLimit_LeavesRoomForMultipart(t *testing.T) {
	assert.Greater(t, handlers.UploadBodyLimit(testMaxFileSize), testMaxFileSize+1)
}

func TestUploadHandler_ImageOnly(t *testing.T) {
	parser := new(mocks.MockPDFParserService)
	parser.On("ExtractText", mock.Anything).Return("", &services.ExtractionError{Message: "No text could be extracted from this PDF."})
	app, dir := newUploadApp(t, parser)

	req := multipartRequest(t, "/api/v1/parse-pdf", "file", "scan.pdf", "application/pdf", []byte("%PDF-1.4"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "No text could be extracted from this PDF.", body.Error)
	assertDirEmpty(t, dir)
}

func TestUploadHandler_ParseError(t *testing.T) {
	parser := new(mocks.MockPDFParserService)
	parser.On("ExtractText", mock.Anything).Return("", &services.ParseError{Err: errors.New("not a PDF file: invalid header")})
	app, _ := newUploadApp(t, parser)

	req := multipartRequest(t, "/api/v1/parse-pdf", "file", "cv.pdf", "application/pdf", []byte("garbage"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to parse PDF: not a PDF file: invalid header", body.Error)
}
