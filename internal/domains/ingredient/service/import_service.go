package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	ingredientModel "foodgram-backend/internal/domains/ingredient/model"
	"foodgram-backend/internal/domains/ingredient/repository"
	tagModel "foodgram-backend/internal/domains/tag/model"
	tagRepo "foodgram-backend/internal/domains/tag/repository"
)

// =====================================================
// REFERENCE DATA IMPORT
// =====================================================

// ImportResult summarizes one import run.
type ImportResult struct {
	Rows    int `json:"rows"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// ImportService bulk-loads ingredient and tag reference data from
// CSV or XLSX files.
type ImportService interface {
	ImportIngredients(ctx context.Context, path string) (*ImportResult, error)
	ImportTags(ctx context.Context, path string) (*ImportResult, error)
}

type importService struct {
	ingredientRepo repository.IngredientRepository
	tagRepo        tagRepo.TagRepository
}

func NewImportService(
	ingredientRepo repository.IngredientRepository,
	tagRepo tagRepo.TagRepository,
) ImportService {
	return &importService{
		ingredientRepo: ingredientRepo,
		tagRepo:        tagRepo,
	}
}

// ImportIngredients reads rows of (name, measurement_unit).
func (s *importService) ImportIngredients(ctx context.Context, path string) (*ImportResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, ingredientModel.NewImportFailedError(err)
	}

	var ingredients []ingredientModel.Ingredient
	skipped := 0
	for _, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			skipped++
			continue
		}
		ingredients = append(ingredients, ingredientModel.Ingredient{
			Name:            strings.TrimSpace(row[0]),
			MeasurementUnit: strings.TrimSpace(row[1]),
		})
	}

	created, err := s.ingredientRepo.BulkCreate(ctx, ingredients)
	if err != nil {
		return nil, ingredientModel.NewImportFailedError(err)
	}

	log.Info().
		Str("path", path).
		Int("rows", len(rows)).
		Int("created", created).
		Msg("Ingredients imported")

	return &ImportResult{Rows: len(rows), Created: created, Skipped: skipped}, nil
}

// ImportTags reads rows of (name, color, slug).
func (s *importService) ImportTags(ctx context.Context, path string) (*ImportResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, ingredientModel.NewImportFailedError(err)
	}

	var tags []tagModel.Tag
	skipped := 0
	for _, row := range rows {
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			skipped++
			continue
		}
		tags = append(tags, tagModel.Tag{
			Name:  strings.TrimSpace(row[0]),
			Color: strings.TrimSpace(row[1]),
			Slug:  strings.TrimSpace(row[2]),
		})
	}

	created, err := s.tagRepo.BulkCreate(ctx, tags)
	if err != nil {
		return nil, ingredientModel.NewImportFailedError(err)
	}

	log.Info().
		Str("path", path).
		Int("rows", len(rows)).
		Int("created", created).
		Msg("Tags imported")

	return &ImportResult{Rows: len(rows), Created: created, Skipped: skipped}, nil
}

// readRows dispatches on file extension: .csv or .xlsx.
// The first row is treated as a header and skipped.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, validated later

	var rows [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, record)
	}

	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	all, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if len(all) <= 1 {
		return nil, nil
	}
	return all[1:], nil
}
