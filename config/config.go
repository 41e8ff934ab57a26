package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ModeBatch  = "batch"
	ModeServer = "server"

	DefaultOutputFilename = "electricity_bills_output.xlsx"
)

type Config struct {
	Mode              string
	ServerPort        string
	BillsFolder       string
	OutputFilename    string
	PDFPassword       string
	OCREnabled        bool
	TesseractDataPath string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	mode := strings.ToLower(getEnv("APP_MODE", ModeBatch))
	if mode != ModeServer {
		mode = ModeBatch
	}

	return &Config{
		Mode:              mode,
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		BillsFolder:       getEnv("BILLS_FOLDER", ""),
		OutputFilename:    getEnv("OUTPUT_FILENAME", DefaultOutputFilename),
		PDFPassword:       getEnv("PDF_PASSWORD", ""),
		OCREnabled:        getEnvAsBool("OCR_ENABLED", false),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10 MB
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
