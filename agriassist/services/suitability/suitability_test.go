package suitability

import (
	"agriassist/agriassist/services/predictor"
	"agriassist/agriassist/sources/psql/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rice() models.SoilRequirement {
	return models.SoilRequirement{
		CropName:    "rice",
		NitrogenMin: 60, NitrogenMax: 100,
		PhosphorusMin: 35, PhosphorusMax: 60,
		PotassiumMin: 35, PotassiumMax: 45,
		TemperatureMin: 20, TemperatureMax: 27,
		HumidityMin: 80, HumidityMax: 85,
		PhMin: 5, PhMax: 7.5,
		RainfallMin: 180, RainfallMax: 300,
	}
}

func riceSoil() predictor.SoilData {
	return predictor.SoilData{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, Ph: 6.5, Rainfall: 203}
}

func TestScorePerfectFit(t *testing.T) {
	assert.Equal(t, 100, Score(rice(), riceSoil()))
}

func TestScorePartialFactor(t *testing.T) {
	soil := riceSoil()
	// midpoint 80, span 40: 1 - 40/40 = 0, so nitrogen contributes nothing
	soil.Nitrogen = 120
	assert.Equal(t, 85, Score(rice(), soil))

	// 1 - 30/40 = 0.25 of the 0.15 weight
	soil.Nitrogen = 110
	assert.Equal(t, 89, Score(rice(), soil))
}

func TestScorePhHasLowerWeight(t *testing.T) {
	soil := riceSoil()
	soil.Ph = 14
	assert.Equal(t, 90, Score(rice(), soil))
}

func TestScoreZeroSpan(t *testing.T) {
	req := rice()
	req.PhMin, req.PhMax = 6, 6
	soil := riceSoil()
	soil.Ph = 6
	assert.Equal(t, 100, Score(req, soil))
	soil.Ph = 6.1
	assert.Equal(t, 90, Score(req, soil))
}

func TestRecommendTopN(t *testing.T) {
	mk := func(name string, nMin, nMax float64) models.SoilRequirement {
		r := rice()
		r.CropName = name
		r.NitrogenMin, r.NitrogenMax = nMin, nMax
		return r
	}
	reqs := []models.SoilRequirement{
		mk("a", 0, 10),
		mk("b", 60, 100),
		mk("c", 0, 10),
		mk("d", 80, 95),
		mk("e", 0, 10),
	}

	got := Recommend(reqs, riceSoil(), DefaultTop)
	require.Len(t, got, 4)
	assert.Equal(t, "b", got[0].Crop)
	assert.Equal(t, "d", got[1].Crop)
	assert.Equal(t, 100, got[0].Efficiency)
	assert.Equal(t, []string{"a", "c"}, []string{got[2].Crop, got[3].Crop})
}
