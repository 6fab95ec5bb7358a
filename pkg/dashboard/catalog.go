package dashboard

import (
	"Balance-Eat/internal/utils/storage"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	ColumnName     = "대표명"
	ColumnCalories = "열량"
	ColumnCarbs    = "탄수화물"
	ColumnProtein  = "단백질"
	ColumnFat      = "지방"
)

var ErrMissingDownloader = errors.New("s3 catalog requires a downloader")

type (
	CatalogFood struct {
		Name     string
		Category string
		Calories float64
		Carbs    float64
		Protein  float64
		Fat      float64
	}

	Catalog struct {
		foods []CatalogFood
	}
)

// CategoryOf returns the part of a name before the first underscore.
func CategoryOf(name string) string {
	category, _, _ := strings.Cut(name, "_")
	return category
}

// LoadCatalog reads the catalog from a local path or an s3://bucket/key url.
func LoadCatalog(ctx context.Context, location string, s3 storage.AwsS3) (*Catalog, error) {
	if storage.IsS3URL(location) {
		if s3 == nil {
			return nil, ErrMissingDownloader
		}
		bucket, key, err := storage.ParseS3URL(location)
		if err != nil {
			return nil, err
		}
		data, err := s3.Download(ctx, bucket, key)
		if err != nil {
			return nil, err
		}
		return ParseCatalog(bytes.NewReader(data))
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalog(f)
}

func ParseCatalog(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	for _, col := range []string{ColumnName, ColumnCalories, ColumnCarbs, ColumnProtein, ColumnFat} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("catalog is missing column %q", col)
		}
	}

	var foods []CatalogFood
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog line %d: %w", line, err)
		}

		name := strings.TrimSpace(field(record, index[ColumnName]))
		if name == "" {
			continue
		}
		food := CatalogFood{Name: name, Category: CategoryOf(name)}
		for col, dst := range map[string]*float64{
			ColumnCalories: &food.Calories,
			ColumnCarbs:    &food.Carbs,
			ColumnProtein:  &food.Protein,
			ColumnFat:      &food.Fat,
		} {
			if *dst, err = parseNumber(field(record, index[col])); err != nil {
				return nil, fmt.Errorf("catalog line %d column %s: %w", line, col, err)
			}
		}
		foods = append(foods, food)
	}
	return &Catalog{foods: foods}, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// parseNumber treats a blank cell as zero.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (c *Catalog) Len() int {
	return len(c.foods)
}

// Search matches term case-insensitively against name or category. An empty
// term matches everything.
func (c *Catalog) Search(term string) []CatalogFood {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]CatalogFood(nil), c.foods...)
	}

	var out []CatalogFood
	for _, f := range c.foods {
		if strings.Contains(strings.ToLower(f.Name), term) || strings.Contains(strings.ToLower(f.Category), term) {
			out = append(out, f)
		}
	}
	return out
}

// Categories lists the distinct categories of foods, sorted.
func Categories(foods []CatalogFood) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range foods {
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		out = append(out, f.Category)
	}
	sort.Strings(out)
	return out
}

func InCategory(foods []CatalogFood, category string) []CatalogFood {
	var out []CatalogFood
	for _, f := range foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func (c *Catalog) Find(name string) (CatalogFood, bool) {
	for _, f := range c.foods {
		if f.Name == name {
			return f, true
		}
	}
	return CatalogFood{}, false
}
