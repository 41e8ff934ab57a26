package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/Aashish23092/electricity-bill-extractor/client"
	"github.com/Aashish23092/electricity-bill-extractor/config"
	"github.com/Aashish23092/electricity-bill-extractor/handler"
	"github.com/Aashish23092/electricity-bill-extractor/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	// OCR is opt-in; it needs a local Tesseract install
	var ocrClient service.OCRClient
	if cfg.OCREnabled {
		tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
		defer tesseractClient.Close()
		ocrClient = tesseractClient
		log.Println("OCR fallback enabled, tessdata:", cfg.TesseractDataPath)
	}

	billService := service.NewBillService(service.NewPDFProcessor(), ocrClient, cfg.PDFPassword)

	if cfg.Mode == config.ModeServer {
		runServer(cfg, billService)
		return
	}
	runBatch(cfg, billService)
}

func runBatch(cfg *config.Config, billService *service.BillService) {
	var picker client.FolderPicker = client.NewDialogFolderPicker()
	if cfg.BillsFolder != "" {
		picker = client.StaticFolderPicker{Folder: cfg.BillsFolder}
	}

	folder, err := picker.PickFolder()
	if errors.Is(err, client.ErrNoFolderSelected) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to select folder: %v", err)
	}

	batchService := service.NewBatchService(billService, cfg.OutputFilename)
	outputPath, err := batchService.Run(folder)
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}

	fmt.Printf("\n[SUCCESS] Data saved to: %s\n", outputPath)
}

func runServer(cfg *config.Config, billService *service.BillService) {
	billHandler := handler.NewBillHandler(billService, cfg.MaxFileSize, cfg.OutputFilename)

	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20

	handler.RegisterRoutes(router, billHandler)

	log.Printf("Starting Electricity Bill Extractor on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
