package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/Aashish23092/electricity-bill-extractor/dto"
)

type BatchService struct {
	billService    *BillService
	outputFilename string
}

func NewBatchService(billService *BillService, outputFilename string) *BatchService {
	return &BatchService{
		billService:    billService,
		outputFilename: outputFilename,
	}
}

// ListBills returns the names of the regular files in folder ending in
// .pdf, in any case. Subfolders and other files are skipped.
func ListBills(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !dto.IsPDFName(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ProcessFolder extracts one record per bill in folder. A bill that cannot
// be read still produces a record.
func (s *BatchService) ProcessFolder(folder string) ([]dto.ExtractionRecord, error) {
	names, err := ListBills(folder)
	if err != nil {
		return nil, err
	}

	log.Printf("Processing %d bills in %s", len(names), folder)

	records := make([]dto.ExtractionRecord, 0, len(names))
	for _, name := range names {
		records = append(records, s.billService.ProcessFile(filepath.Join(folder, name)))
	}
	return records, nil
}

// Run processes every bill in folder and writes the report into the same
// folder. It returns the report path.
func (s *BatchService) Run(folder string) (string, error) {
	records, err := s.ProcessFolder(folder)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(folder, s.outputFilename)
	if err := WriteReport(records, outputPath); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return outputPath, nil
}
