package types

type PredictCropRequest struct {
	Features  []float64 `json:"features"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

type SoilInput struct {
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Ph          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

type CropInsightsRequest struct {
	PredictedCrop string    `json:"predictedCrop"`
	SoilData      SoilInput `json:"soilData"`
}

type CategoryRequest struct {
	Category string `json:"category"`
}

// SoilRequirementInput is a YAML seed entry. Each factor is a [min, max] pair.
type SoilRequirementInput struct {
	Crop        string    `yaml:"crop"`
	Nitrogen    []float64 `yaml:"nitrogen"`
	Phosphorus  []float64 `yaml:"phosphorus"`
	Potassium   []float64 `yaml:"potassium"`
	Temperature []float64 `yaml:"temperature"`
	Humidity    []float64 `yaml:"humidity"`
	Ph          []float64 `yaml:"ph"`
	Rainfall    []float64 `yaml:"rainfall"`
}
