package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://balance-eat/catalog/foods.csv")
	require.NoError(t, err)
	assert.Equal(t, "balance-eat", bucket)
	assert.Equal(t, "catalog/foods.csv", key)

	for _, bad := range []string{"foods.csv", "s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, _, err := ParseS3URL(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsS3URL(t *testing.T) {
	assert.True(t, IsS3URL("s3://b/k"))
	assert.False(t, IsS3URL("./data/foods.csv"))
}
