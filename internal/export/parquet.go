package export

import (
	"fmt"
	"os"

	"github.com/ajay-constructions/estimator/internal/models"
	"github.com/parquet-go/parquet-go"
)

// QuoteRecord is the flattened Parquet row for one archived quote.
type QuoteRecord struct {
	ClientName         string  `parquet:"client_name"`
	Category           string  `parquet:"category"`
	Zone               string  `parquet:"zone"`
	Grade              string  `parquet:"grade"`
	AreaSqft           float64 `parquet:"area_sqft"`
	MaterialCount      int32   `parquet:"material_count"`
	LaborCost          float64 `parquet:"labor_cost"`
	EstimatedDays      int32   `parquet:"estimated_days"`
	TotalEstimatedCost float64 `parquet:"total_estimated_cost"`
	ImagePath          string  `parquet:"image_path"`
	CreatedAt          int64   `parquet:"created_at,timestamp(millisecond)"`
}

func flatten(quote models.Quote) QuoteRecord {
	return QuoteRecord{
		ClientName:         quote.Request.ClientName,
		Category:           string(quote.Request.Category),
		Zone:               quote.Request.Zone,
		Grade:              string(quote.Request.Grade),
		AreaSqft:           quote.Request.AreaSqft,
		MaterialCount:      int32(len(quote.Estimate.Materials)),
		LaborCost:          quote.Estimate.LaborCost,
		EstimatedDays:      int32(quote.Estimate.EstimatedDays),
		TotalEstimatedCost: quote.Estimate.TotalEstimatedCost,
		ImagePath:          quote.ImagePath,
		CreatedAt:          quote.CreatedAt.UnixMilli(),
	}
}

// WriteParquet archives the given quotes as a Parquet file at path.
func WriteParquet(path string, quotes []models.Quote) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	writer := parquet.NewGenericWriter[QuoteRecord](file)

	records := make([]QuoteRecord, 0, len(quotes))
	for _, quote := range quotes {
		records = append(records, flatten(quote))
	}

	if len(records) > 0 {
		if _, err := writer.Write(records); err != nil {
			writer.Close()
			file.Close()
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file: %w", err)
	}

	return nil
}

// ReadParquet loads archived quote records from a Parquet file.
func ReadParquet(path string) ([]QuoteRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[QuoteRecord](pf)
	defer reader.Close()

	var records []QuoteRecord
	for {
		batch := make([]QuoteRecord, 64)
		n, err := reader.Read(batch)
		records = append(records, batch[:n]...)
		if err != nil {
			break
		}
	}

	return records, nil
}
