package inventory

import (
	"encoding/csv"
	"fmt"
	"io"

	"enstracker/pkg/models"
)

// WriteCSV serializes assets with one row per asset and a header row of the
// attribute names. Field order and header names follow models.AssetFields
// exactly; external consumers depend on the bytes.
func WriteCSV(w io.Writer, assets []models.Asset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.AssetFields); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, asset := range assets {
		row := make([]string, 0, len(models.AssetFields))
		for _, field := range models.AssetFields {
			row = append(row, asset.FieldValue(field))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", asset.Tag, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
