package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"boltresume/resume-ai/internal/services"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>...",
	Short: "Extract plain text from one or more PDF files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

var extractPrint bool

func init() {
	extractCmd.Flags().BoolVarP(&extractPrint, "print", "p", false, "Print the extracted text to stdout")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log.Println("🚀 Starting text extraction...")

	pdfParser := services.NewPDFParserService()

	successCount := 0
	failCount := 0

	for _, path := range args {
		log.Printf("\n📄 Processing: %s", path)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		content, err := pdfParser.ExtractTextWithMetaData(path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))
		if extractPrint {
			fmt.Fprintln(cmd.OutOrStdout(), content.Text)
		}
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Extraction Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		return fmt.Errorf("%d of %d documents failed", failCount, len(args))
	}

	log.Println("✅ All documents extracted successfully!")
	return nil
}
