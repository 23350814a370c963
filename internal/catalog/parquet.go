package catalog

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// RestaurantRow is the Parquet layout of a catalog row.
type RestaurantRow struct {
	ID           string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name         string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	City         string  `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	Country      string  `parquet:"name=country, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cuisine      string  `parquet:"name=cuisine, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating       float64 `parquet:"name=rating, type=DOUBLE"`
	ReviewsCount int64   `parquet:"name=reviews_count, type=INT64"`
	PriceRange   string  `parquet:"name=price_range, type=BYTE_ARRAY, convertedtype=UTF8"`
	Latitude     float64 `parquet:"name=latitude, type=DOUBLE"`
	Longitude    float64 `parquet:"name=longitude, type=DOUBLE"`
	Address      string  `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	Phone        string  `parquet:"name=phone, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func rowFromRestaurant(r models.Restaurant) RestaurantRow {
	return RestaurantRow{
		ID:           r.ID,
		Name:         r.Name,
		City:         r.City,
		Country:      r.Country,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		ReviewsCount: int64(r.ReviewsCount),
		PriceRange:   r.PriceRange,
		Latitude:     r.Location.Lat,
		Longitude:    r.Location.Lon,
		Address:      r.Address,
		Phone:        r.Phone,
	}
}

func (row RestaurantRow) restaurant() models.Restaurant {
	return models.Restaurant{
		ID:           row.ID,
		Name:         row.Name,
		City:         row.City,
		Country:      row.Country,
		Cuisine:      row.Cuisine,
		Rating:       row.Rating,
		ReviewsCount: int(row.ReviewsCount),
		PriceRange:   row.PriceRange,
		Location:     models.Location{Lat: row.Latitude, Lon: row.Longitude},
		Address:      row.Address,
		Phone:        row.Phone,
	}
}

// ParquetSource reads restaurants from a local Parquet file.
type ParquetSource struct {
	Path string
}

func (s *ParquetSource) Load(ctx context.Context) ([]models.Restaurant, error) {
	fr, err := local.NewLocalFileReader(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(RestaurantRow), 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetReader: %w", err)
	}
	defer pr.ReadStop()

	num := int(pr.GetNumRows())
	rows := make([]RestaurantRow, num)
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}

	out := make([]models.Restaurant, 0, num)
	for _, row := range rows {
		out = append(out, row.restaurant())
	}
	return out, ctx.Err()
}

// WriteParquet writes restaurants to a local Parquet file at path.
func WriteParquet(path string, rows []models.Restaurant) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create local file writer: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(RestaurantRow), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	for _, r := range rows {
		if err := pw.Write(rowFromRestaurant(r)); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return fw.Close()
}
