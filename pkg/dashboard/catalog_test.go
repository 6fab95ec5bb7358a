package dashboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = "\ufeff대표명,열량,탄수화물,단백질,지방,식품군\n" +
	"밥_현미밥,300,65.5,6,2,곡류\n" +
	"밥_흰쌀밥,310,68,5.5,0.5,곡류\n" +
	"국_된장국,80,7,5,3,국\n" +
	"Salad_Caesar,250,10,8,20,기타\n" +
	"두부,90,,9,5,콩\n"

func parseSample(t *testing.T) *Catalog {
	t.Helper()
	c, err := ParseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	return c
}

func TestParseCatalog(t *testing.T) {
	c := parseSample(t)
	require.Equal(t, 5, c.Len())

	rice, ok := c.Find("밥_현미밥")
	require.True(t, ok)
	assert.Equal(t, "밥", rice.Category)
	assert.Equal(t, 65.5, rice.Carbs)

	tofu, ok := c.Find("두부")
	require.True(t, ok)
	assert.Equal(t, "두부", tofu.Category)
	assert.Zero(t, tofu.Carbs)
}

func TestParseCatalogMissingColumn(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("대표명,열량\n밥,300\n"))
	assert.ErrorContains(t, err, "탄수화물")
}

func TestParseCatalogBadNumber(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("대표명,열량,탄수화물,단백질,지방\n밥,많음,1,1,1\n"))
	assert.Error(t, err)
}

func TestCatalogSearch(t *testing.T) {
	c := parseSample(t)

	byCategory := c.Search("밥")
	assert.Len(t, byCategory, 2)

	caseInsensitive := c.Search("  caesar ")
	require.Len(t, caseInsensitive, 1)
	assert.Equal(t, "Salad_Caesar", caseInsensitive[0].Name)

	assert.Len(t, c.Search(""), 5)
	assert.Empty(t, c.Search("피자"))
}

func TestCategoriesAndInCategory(t *testing.T) {
	c := parseSample(t)
	all := c.Search("")

	assert.Equal(t, []string{"Salad", "국", "두부", "밥"}, Categories(all))

	rice := InCategory(all, "밥")
	require.Len(t, rice, 2)
	assert.Equal(t, "밥_현미밥", rice[0].Name)
	assert.Equal(t, "밥_흰쌀밥", rice[1].Name)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "국", CategoryOf("국_된장국_시래기"))
	assert.Equal(t, "사과", CategoryOf("사과"))
}

type fakeS3 struct {
	objects  map[string][]byte
	uploaded map[string][]byte
}

func (f *fakeS3) Download(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (f *fakeS3) Upload(_ context.Context, bucket, key string, body []byte, _ string) error {
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[bucket+"/"+key] = body
	return nil
}

func TestLoadCatalogFromS3(t *testing.T) {
	s3 := &fakeS3{objects: map[string][]byte{"foods/db.csv": []byte(sampleCatalog)}}

	c, err := LoadCatalog(context.Background(), "s3://foods/db.csv", s3)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	_, err = LoadCatalog(context.Background(), "s3://foods/db.csv", nil)
	assert.ErrorIs(t, err, ErrMissingDownloader)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	c, err := LoadCatalog(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}
