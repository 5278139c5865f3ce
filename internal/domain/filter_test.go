package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare/internal/domain"
)

func TestParseCity_AcceptsTableNames(t *testing.T) {
	for _, name := range []string{"chicago", "new york city", "washington"} {
		c, err := domain.ParseCity(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name)
	}
}

func TestParseCity_RejectsOthers(t *testing.T) {
	for _, name := range []string{"", "Chicago", "boston", "new york", " washington"} {
		_, err := domain.ParseCity(name)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}
}

func TestParseMonth(t *testing.T) {
	for _, m := range append([]string{"all"}, domain.Months...) {
		got, err := domain.ParseMonth(m)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, m := range []string{"july", "december", "jan", "All"} {
		_, err := domain.ParseMonth(m)
		assert.ErrorIs(t, err, domain.ErrValidation, m)
	}
}

func TestParseDay(t *testing.T) {
	for _, d := range append([]string{"all"}, domain.Days...) {
		_, err := domain.ParseDay(d)
		require.NoError(t, err)
	}
	for _, d := range []string{"mon", "Monday", "someday"} {
		_, err := domain.ParseDay(d)
		assert.ErrorIs(t, err, domain.ErrValidation, d)
	}
}

func TestMonthNumber(t *testing.T) {
	assert.Equal(t, 1, domain.MonthNumber("january"))
	assert.Equal(t, 6, domain.MonthNumber("june"))
	assert.Equal(t, 0, domain.MonthNumber("all"))
}

func TestCitySchemas(t *testing.T) {
	c, err := domain.LookupCity("washington")
	require.NoError(t, err)
	assert.False(t, c.Schema.HasGender)
	assert.False(t, c.Schema.HasBirthYear)

	c, err = domain.LookupCity("chicago")
	require.NoError(t, err)
	assert.True(t, c.Schema.HasGender)
	assert.True(t, c.Schema.HasBirthYear)

	_, err = domain.LookupCity("denver")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
