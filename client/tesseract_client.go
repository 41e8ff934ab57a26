package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/otiai10/gosseract/v2"
)

type TesseractClient struct {
	dataPath string
	language string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
		language: "eng",
	}
}

// ExtractTextFromImage runs Tesseract over a decoded page image
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		if err := client.SetTessdataPrefix(tc.dataPath); err != nil {
			return "", fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}

	if err := client.SetLanguage(tc.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	// Bills are laid out in columns; automatic segmentation keeps rows intact.
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
