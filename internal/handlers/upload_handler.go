package handlers

import (
	"fmt"
	"log"
	"mime"

	"github.com/gofiber/fiber/v2"

	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

const pdfMediaType = "application/pdf"

// multipartOverhead leaves room for boundaries and part headers, so a file
// just over maxFileSize still reaches HandleParsePDF and gets a JSON 400.
const multipartOverhead = 1024 * 1024

// UploadBodyLimit is the server body limit for a given file size limit.
// Bodies above it are refused by the server with 413 before any handler runs.
func UploadBodyLimit(maxFileSize int64) int {
	return int(maxFileSize) + multipartOverhead
}

type UploadHandler struct {
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleParsePDF handles POST /parse-pdf
func (h *UploadHandler) HandleParsePDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No file uploaded.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	mediaType, _, err := mime.ParseMediaType(file.Header.Get("Content-Type"))
	if err != nil || mediaType != pdfMediaType {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid file type. Please upload a PDF.",
		})
	}

	filePath, err := h.storageService.Spool(file)
	if err != nil {
		log.Printf("❌ [%s] failed to spool upload: %v", requestID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to parse PDF.",
		})
	}
	defer func() {
		if err := h.storageService.Remove(filePath); err != nil {
			log.Printf("⚠️  [%s] failed to remove temp upload: %v", requestID(c), err)
		}
	}()

	text, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		return RespondError(c, err, "Failed to parse PDF.")
	}

	log.Printf("📄 [%s] extracted %d characters from %s", requestID(c), len(text), file.Filename)

	return c.JSON(models.ParsedDocument{Text: text})
}
