package fund

import (
	"fmt"
	"os"

	"WhyInvesting/internal/model"

	"gopkg.in/yaml.v3"
)

// LoadDataset reads a dataset from a YAML file. An empty path yields the built-in dataset.
func LoadDataset(filePath string) (*model.Dataset, error) {
	if filePath == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var ds model.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if ds.ETFAllocations == nil {
		ds.ETFAllocations = map[string]float64{}
	}
	if ds.Returns == nil {
		ds.Returns = map[string]model.ProjectReturn{}
	}
	return &ds, nil
}
