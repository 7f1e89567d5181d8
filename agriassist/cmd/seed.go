package main

import (
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/sources/psql/models"
	"agriassist/agriassist/utils/color"
	"agriassist/agriassist/utils/logging"
	"agriassist/agriassist/utils/types"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type seedFileContents struct {
	Knowledge        []types.KnowledgeInput       `yaml:"knowledge"`
	SoilRequirements []types.SoilRequirementInput `yaml:"soil_requirements"`
}

type seedResult struct {
	Knowledge int
	Soil      int
	Skipped   int
}

type knowledgeInserter interface {
	Insert(ctx context.Context, record *models.KnowledgeRecord) error
}

type soilUpserter interface {
	Upsert(ctx context.Context, req *models.SoilRequirement) error
}

var (
	_ knowledgeInserter = (*dao.KnowledgeDAO)(nil)
	_ soilUpserter      = (*dao.SoilRequirementDAO)(nil)
)

func seedFile(ctx context.Context, path string, knowledge knowledgeInserter, soil soilUpserter) (seedResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return seedResult{}, err
	}
	defer f.Close()
	return seed(ctx, f, knowledge, soil)
}

// seed loads every valid entry and skips (with a warning) the invalid ones.
func seed(ctx context.Context, r io.Reader, knowledge knowledgeInserter, soil soilUpserter) (seedResult, error) {
	var contents seedFileContents
	if err := yaml.NewDecoder(r).Decode(&contents); err != nil && err != io.EOF {
		return seedResult{}, fmt.Errorf("invalid seed file: %w", err)
	}

	var res seedResult
	for i, in := range contents.Knowledge {
		rec := &models.KnowledgeRecord{
			Keywords:   strings.TrimSpace(in.Keywords),
			ResponseEN: strings.TrimSpace(in.ResponseEN),
			ResponseHI: in.ResponseHI,
			ResponseTE: in.ResponseTE,
			ResponseKN: in.ResponseKN,
			ResponseML: in.ResponseML,
			Source:     in.Source,
			Content:    in.Content,
		}
		if err := knowledge.Insert(ctx, rec); err != nil {
			res.Skipped++
			logging.ErrorLogger.Warn("Skipping knowledge entry", zap.Int("index", i), zap.Error(err))
			fmt.Println(color.ColorWarning(fmt.Sprintf("knowledge[%d]: %v", i, err)))
			continue
		}
		res.Knowledge++
	}

	for i, in := range contents.SoilRequirements {
		req, err := soilRequirement(in)
		if err == nil {
			err = soil.Upsert(ctx, req)
		}
		if err != nil {
			res.Skipped++
			logging.ErrorLogger.Warn("Skipping soil requirement", zap.Int("index", i), zap.Error(err))
			fmt.Println(color.ColorWarning(fmt.Sprintf("soil_requirements[%d]: %v", i, err)))
			continue
		}
		res.Soil++
	}
	return res, nil
}

func soilRequirement(in types.SoilRequirementInput) (*models.SoilRequirement, error) {
	if strings.TrimSpace(in.Crop) == "" {
		return nil, fmt.Errorf("crop name is required")
	}
	ranges := map[string][]float64{
		"nitrogen": in.Nitrogen, "phosphorus": in.Phosphorus, "potassium": in.Potassium,
		"temperature": in.Temperature, "humidity": in.Humidity, "ph": in.Ph, "rainfall": in.Rainfall,
	}
	for name, r := range ranges {
		if len(r) != 2 || r[0] > r[1] {
			return nil, fmt.Errorf("%s must be a [min, max] pair", name)
		}
	}
	return &models.SoilRequirement{
		CropName:       strings.ToLower(strings.TrimSpace(in.Crop)),
		NitrogenMin:    in.Nitrogen[0],
		NitrogenMax:    in.Nitrogen[1],
		PhosphorusMin:  in.Phosphorus[0],
		PhosphorusMax:  in.Phosphorus[1],
		PotassiumMin:   in.Potassium[0],
		PotassiumMax:   in.Potassium[1],
		TemperatureMin: in.Temperature[0],
		TemperatureMax: in.Temperature[1],
		HumidityMin:    in.Humidity[0],
		HumidityMax:    in.Humidity[1],
		PhMin:          in.Ph[0],
		PhMax:          in.Ph[1],
		RainfallMin:    in.Rainfall[0],
		RainfallMax:    in.Rainfall[1],
	}, nil
}
