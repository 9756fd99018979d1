package tariff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/model/tariff"
)

func TestTable_FindCity(t *testing.T) {
	table := tariff.DefaultTable()

	t.Run("exact postal code and name", func(t *testing.T) {
		c, ok := table.FindCity("78000", "Versailles")
		require.True(t, ok)
		assert.Equal(t, "Versailles", c.Name)
	})

	t.Run("accents and hyphens are ignored", func(t *testing.T) {
		c, ok := table.FindCity("94160", "Saint-Mande")
		require.True(t, ok)
		assert.Equal(t, "Saint Mandé", c.Name)
	})

	t.Run("fuzzy inclusion disambiguates geocoder spellings", func(t *testing.T) {
		c, ok := table.FindCity("93200", "Saint-Denis")
		require.True(t, ok)
		assert.Equal(t, "Saint Denis (nord)", c.Name)
	})

	t.Run("postal code alone falls back to first row", func(t *testing.T) {
		c, ok := table.FindCity("75011", "")
		require.True(t, ok)
		assert.Equal(t, "Paris 11", c.Name)
	})

	t.Run("unknown postal code is not found", func(t *testing.T) {
		_, ok := table.FindCity("69001", "Lyon")
		assert.False(t, ok)
	})
}

func TestTable_SearchCities(t *testing.T) {
	table := tariff.DefaultTable()

	t.Run("postal code prefix", func(t *testing.T) {
		got := table.SearchCities("750", 25)
		assert.Len(t, got, 20) // all Paris arrondissements
	})

	t.Run("name fragment", func(t *testing.T) {
		got := table.SearchCities("versail", 10)
		require.Len(t, got, 1)
		assert.Equal(t, "Versailles", got[0].Name)
	})

	t.Run("leading article is ignored", func(t *testing.T) {
		got := table.SearchCities("Le Raincy", 10)
		require.NotEmpty(t, got)
		assert.Equal(t, "Raincy (le)", got[0].Name)
	})

	t.Run("limit caps results", func(t *testing.T) {
		got := table.SearchCities("750", 5)
		assert.Len(t, got, 5)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, table.SearchCities("  ", 10))
	})
}

func TestTable_Lookup(t *testing.T) {
	table := tariff.DefaultTable()

	t.Run("paris run charges the max of both cities without supplement", func(t *testing.T) {
		// Paris 01: 2 bons normal, Versailles: 8 bons normal
		q, err := table.Lookup("75001", "Paris 01", "78000", "Versailles", order.VehicleMoto, order.FormulaNormal, 22.4)
		require.NoError(t, err)

		assert.Equal(t, 8.0, q.BaseBons)
		assert.Zero(t, q.SupplementBons)
		assert.True(t, q.ParisInvolved)
		assert.False(t, q.SupplementApplied)
		assert.Equal(t, int64(4400), q.PriceHTCents) // 8 bons x 5.50
	})

	t.Run("suburb to suburb pays the kilometric supplement", func(t *testing.T) {
		// Versailles: 8 bons, Nanterre: 4 bons, 10 km x 0.1 = 1 bon
		q, err := table.Lookup("78000", "Versailles", "92000", "Nanterre", order.VehicleMoto, order.FormulaNormal, 10)
		require.NoError(t, err)

		assert.Equal(t, 8.0, q.BaseBons)
		assert.Equal(t, 1.0, q.SupplementBons)
		assert.Equal(t, 9.0, q.TotalBons)
		assert.True(t, q.SupplementApplied)
		assert.Equal(t, int64(4950), q.PriceHTCents)
	})

	t.Run("light vehicle normal doubles the moto rate", func(t *testing.T) {
		q, err := table.Lookup("78000", "Versailles", "75008", "Paris 08", order.VehicleVL, order.FormulaNormal, 18)
		require.NoError(t, err)

		assert.Equal(t, 16.0, q.BaseBons) // 2 x moto normal
		assert.Equal(t, int64(8800), q.PriceHTCents)
	})

	t.Run("light vehicle urgence is unserved", func(t *testing.T) {
		_, err := table.Lookup("75001", "Paris 01", "78000", "Versailles", order.VehicleVL, order.FormulaUrgence, 22.4)
		assert.ErrorIs(t, err, tariff.ErrRouteUnserved)
	})

	t.Run("unknown pickup postal code is unserved", func(t *testing.T) {
		_, err := table.Lookup("69001", "Lyon", "75001", "Paris 01", order.VehicleMoto, order.FormulaNormal, 400)
		assert.ErrorIs(t, err, tariff.ErrRouteUnserved)
	})

	t.Run("unknown delivery postal code is unserved", func(t *testing.T) {
		_, err := table.Lookup("75001", "Paris 01", "69001", "Lyon", order.VehicleMoto, order.FormulaNormal, 400)
		assert.ErrorIs(t, err, tariff.ErrRouteUnserved)
	})

	t.Run("negative distance is a validation error, not unserved", func(t *testing.T) {
		_, err := table.Lookup("75001", "Paris 01", "78000", "Versailles", order.VehicleMoto, order.FormulaNormal, -1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, tariff.ErrRouteUnserved)
	})

	t.Run("lookup is deterministic", func(t *testing.T) {
		first, err := table.Lookup("78000", "Versailles", "92000", "Nanterre", order.VehicleMoto, order.FormulaExpress, 10)
		require.NoError(t, err)
		second, err := table.Lookup("78000", "Versailles", "92000", "Nanterre", order.VehicleMoto, order.FormulaExpress, 10)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
