package domain

// MatchWeights holds the relative weight of each scoring factor. Weights
// need not sum to 1; the scoring arithmetic uses their relative magnitudes.
type MatchWeights struct {
	Skills       float64 `json:"skills" yaml:"skills"`
	Causes       float64 `json:"causes" yaml:"causes"`
	Availability float64 `json:"availability" yaml:"availability"`
	Language     float64 `json:"language" yaml:"language"`
	Modality     float64 `json:"modality" yaml:"modality"`
}

// MatchSettings is the singleton matching configuration record.
type MatchSettings struct {
	Threshold int32        `json:"threshold" yaml:"threshold"`
	Weights   MatchWeights `json:"weights" yaml:"weights"`
}

// DefaultMatchSettings returns the compiled-in settings used when no record
// has been saved. Callers get a fresh copy; mutating it never persists.
func DefaultMatchSettings() *MatchSettings {
	return &MatchSettings{
		Threshold: 60,
		Weights: MatchWeights{
			Skills:       0.4,
			Causes:       0.2,
			Availability: 0.2,
			Language:     0.1,
			Modality:     0.1,
		},
	}
}
