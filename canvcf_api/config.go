package canvcf_api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ReadManifest reads the run manifest, casts it to its struct and
// validates it
func ReadManifest(path string) (*Manifest, error) {
	manifestFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the manifest file: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(manifestFile, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse the manifest file: %w", err)
	}

	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &manifest, nil
}

// Validate all mandatory fields
func (manifest *Manifest) validate() error {
	if len(manifest.Samples) == 0 {
		return fmt.Errorf("at least one sample is required")
	}

	seen := map[string]bool{}
	for index, sample := range manifest.Samples {
		if sample.Name == "" {
			return fmt.Errorf("sample %d has no name", index+1)
		}
		if seen[sample.Name] {
			return fmt.Errorf("duplicate sample name %q", sample.Name)
		}
		seen[sample.Name] = true

		if sample.Segments == "" {
			return fmt.Errorf("sample %q has no segments file", sample.Name)
		}
	}
	return nil
}
