package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kidusshoa/recommendation-service/internal/models"
)

// CSVSource lee los volcados planos data/reviews.csv y data/businesses.csv.
// Las columnas se resuelven por nombre de cabecera, no por posición, para
// tolerar exports con columnas extra o reordenadas.
type CSVSource struct {
	dataDir string
}

func NewCSVSource(dataDir string) *CSVSource {
	return &CSVSource{dataDir: dataDir}
}

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) ReviewsPath() string    { return filepath.Join(s.dataDir, "reviews.csv") }
func (s *CSVSource) BusinessesPath() string { return filepath.Join(s.dataDir, "businesses.csv") }

func (s *CSVSource) FetchRatings(ctx context.Context) ([]models.RawRating, error) {
	rows, header, err := readCSV(s.ReviewsPath())
	if err != nil {
		return nil, err
	}

	var out []models.RawRating
	for _, row := range rows {
		out = append(out, models.RawRating{
			UserID:     col(row, header, "user_id"),
			BusinessID: col(row, header, "business_id"),
			Score:      parseScore(col(row, header, "rating")),
			Timestamp:  parseInt64(col(row, header, "timestamp")),
		})
	}
	return out, nil
}

func (s *CSVSource) FetchBusinesses(ctx context.Context) ([]models.RawBusiness, error) {
	rows, header, err := readCSV(s.BusinessesPath())
	if err != nil {
		return nil, err
	}

	var out []models.RawBusiness
	for _, row := range rows {
		out = append(out, models.RawBusiness{
			BusinessID:   col(row, header, "business_id"),
			Name:         col(row, header, "name"),
			Category:     col(row, header, "category"),
			BusinessType: col(row, header, "business_type"),
			Description:  col(row, header, "description"),
			City:         col(row, header, "city"),
			Rating:       parseFloat(col(row, header, "rating")),
		})
	}
	return out, nil
}

func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // filas cortas se toleran, col() devuelve vacío

	head, err := r.Read()
	if err != nil {
		return nil, nil, err
	}
	header := make(map[string]int, len(head))
	for i, h := range head {
		header[h] = i
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

func col(row []string, header map[string]int, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseScore devuelve NaN para valores no numéricos; el normalizador
// lo cuenta como rechazado en vez de abortar la pasada.
func parseScore(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
