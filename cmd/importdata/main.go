package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"foodgram-backend/pkg/container"
	"foodgram-backend/pkg/logger"
)

// importdata bulk-loads reference data (ingredients and tags) from CSV
// or XLSX files into the catalog.
//
//	importdata -ingredients data/ingredients.csv -tags data/tags.csv
func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	ingredientsPath := flag.String("ingredients", "", "path to ingredients file (.csv or .xlsx)")
	tagsPath := flag.String("tags", "", "path to tags file (.csv or .xlsx)")
	flag.Parse()

	if *ingredientsPath == "" && *tagsPath == "" {
		// nothing to do
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	c, err := container.New(ctx)
	if err != nil {
		logger.Error("failed to initialize importer", err)
		os.Exit(1)
	}
	defer c.Close()

	if *ingredientsPath != "" {
		result, err := c.ImportService.ImportIngredients(ctx, *ingredientsPath)
		if err != nil {
			logger.Error("ingredient import failed", err)
			os.Exit(1)
		}
		logger.Info("ingredients imported", map[string]interface{}{
			"rows":    result.Rows,
			"created": result.Created,
			"skipped": result.Skipped,
		})
	}

	if *tagsPath != "" {
		result, err := c.ImportService.ImportTags(ctx, *tagsPath)
		if err != nil {
			logger.Error("tag import failed", err)
			os.Exit(1)
		}
		logger.Info("tags imported", map[string]interface{}{
			"rows":    result.Rows,
			"created": result.Created,
			"skipped": result.Skipped,
		})
	}
}
