package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("2024-03-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("10/03/2024")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(8)
	require.NoError(t, err)
	assert.Len(t, id, 8)

	id, err = GenerateID(0)
	require.NoError(t, err)
	assert.Len(t, id, DefaultIDLength)
}

func TestRoundMoney(t *testing.T) {
	assert.Nil(t, RoundMoney(nil))

	v := 10.126
	require.NotNil(t, RoundMoney(&v))
	assert.Equal(t, 10.13, *RoundMoney(&v))

	zero := 0.0
	assert.Equal(t, 0.0, *RoundMoney(&zero))
}
