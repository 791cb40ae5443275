package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaporhouse-br/VaporHouse/models"
)

func TestPickShippingRate(t *testing.T) {
	rates := []models.ShippingRate{
		{City: "Recife", Neighborhood: "", Fee: 12.00},
		{City: "Recife", Neighborhood: "Boa Viagem", Fee: 8.00},
	}

	t.Run("neighborhood match wins over city-wide", func(t *testing.T) {
		rate := pickShippingRate(rates, "Boa Viagem")
		require.NotNil(t, rate)
		assert.Equal(t, 8.00, rate.Fee)
	})

	t.Run("neighborhood match is case insensitive", func(t *testing.T) {
		rate := pickShippingRate(rates, "boa viagem")
		require.NotNil(t, rate)
		assert.Equal(t, 8.00, rate.Fee)
	})

	t.Run("falls back to city-wide rate", func(t *testing.T) {
		rate := pickShippingRate(rates, "Pina")
		require.NotNil(t, rate)
		assert.Equal(t, 12.00, rate.Fee)
	})

	t.Run("no coverage", func(t *testing.T) {
		only := []models.ShippingRate{{City: "Olinda", Neighborhood: "Casa Caiada", Fee: 15.00}}
		assert.Nil(t, pickShippingRate(only, "Centro"))
	})
}

func TestQuoteShippingFee(t *testing.T) {
	rate := &models.ShippingRate{Fee: 10.00, FreeAbove: 150.00}

	assert.Equal(t, 10.00, quoteShippingFee(rate, 100.00))
	assert.Equal(t, 0.00, quoteShippingFee(rate, 150.00))
	assert.Equal(t, 0.00, quoteShippingFee(rate, 200.00))

	noThreshold := &models.ShippingRate{Fee: 10.00}
	assert.Equal(t, 10.00, quoteShippingFee(noThreshold, 99999.00))
}
