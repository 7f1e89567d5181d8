// Package suitability ranks crops by how well a soil sample fits their
// agronomic requirements.
package suitability

import (
	"agriassist/agriassist/services/predictor"
	"agriassist/agriassist/sources/psql/models"
	"math"
	"sort"
)

const DefaultTop = 4

type Recommendation struct {
	Crop       string `json:"crop"`
	Efficiency int    `json:"efficiency"`
}

type factor struct {
	value, min, max, weight float64
}

// Score returns 0..100. Each factor scores 1 inside its range and decays
// linearly with the distance from the range midpoint outside it.
func Score(req models.SoilRequirement, in predictor.SoilData) int {
	factors := []factor{
		{in.Nitrogen, req.NitrogenMin, req.NitrogenMax, 0.15},
		{in.Phosphorus, req.PhosphorusMin, req.PhosphorusMax, 0.15},
		{in.Potassium, req.PotassiumMin, req.PotassiumMax, 0.15},
		{in.Temperature, req.TemperatureMin, req.TemperatureMax, 0.15},
		{in.Humidity, req.HumidityMin, req.HumidityMax, 0.15},
		{in.Ph, req.PhMin, req.PhMax, 0.1},
		{in.Rainfall, req.RainfallMin, req.RainfallMax, 0.15},
	}

	total := 0.0
	for _, f := range factors {
		total += f.score() * f.weight
	}
	return int(math.Round(total * 100))
}

func (f factor) score() float64 {
	if f.value >= f.min && f.value <= f.max {
		return 1
	}
	span := f.max - f.min
	if span <= 0 {
		return 0
	}
	mid := (f.max + f.min) / 2
	return math.Max(0, 1-math.Abs(f.value-mid)/span)
}

// Recommend scores every crop and returns the best n. Ties keep reqs order.
func Recommend(reqs []models.SoilRequirement, in predictor.SoilData, n int) []Recommendation {
	recs := make([]Recommendation, 0, len(reqs))
	for _, r := range reqs {
		recs = append(recs, Recommendation{Crop: r.CropName, Efficiency: Score(r, in)})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Efficiency > recs[j].Efficiency
	})
	if n > 0 && len(recs) > n {
		recs = recs[:n]
	}
	return recs
}
