package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFParserService extracts the text layer of a PDF on disk.
type PDFParserService interface {
	ExtractText(filePath string) (string, error)
	ExtractTextWithMetaData(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the concatenated page text exactly as the library
// produced it. A document without any text yields *ExtractionError; anything
// the library cannot read yields *ParseError.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	content, err := p.ExtractTextWithMetaData(filePath)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(filePath string) (content *PDFContent, err error) {
	if _, statErr := os.Stat(filePath); statErr != nil {
		return nil, &ParseError{Err: fmt.Errorf("file not accessible: %w", statErr)}
	}

	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &ParseError{Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, &ParseError{Err: openErr}
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			return nil, &ParseError{Err: fmt.Errorf("page %d: %w", pageIndex, pageErr)}
		}
		textBuilder.WriteString(text)
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, &ExtractionError{Message: imageOnlyPDFMessage}
	}

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}
