package mock

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultCatalog maps known item IDs to their fixed English transcripts.
// demo-001 keeps the canonical demo transcript; the rest reproduce the batch
// used by the example clients.
var defaultCatalog = map[string]string{
	"demo-001": "This is a mock English transcript for video demo-001. " +
		"It covers product updates and next steps.",
	"webinar-2024-q1": "This is a mock English transcript for video webinar-2024-q1. " +
		"It walks through the new features launched this quarter.",
	"customer-success-story": "This is a mock English transcript for video customer-success-story. " +
		"A customer explains how the product changed their workflow.",
	"onboarding-101": "This is a mock English transcript for video onboarding-101. " +
		"It introduces new employees to the tools they will use daily.",
	"quarterly-review": "This is a mock English transcript for video quarterly-review. " +
		"Leadership reviews results and sets goals for the next quarter.",
	"meeting-product-roadmap": "This is a mock English transcript for video meeting-product-roadmap. " +
		"The team walks the roadmap and agrees on delivery order.",
	"meeting-customer-success": "This is a mock English transcript for video meeting-customer-success. " +
		"The weekly sync covers open accounts and renewal risks.",
	"meeting-incident-retro": "This is a mock English transcript for video meeting-incident-retro. " +
		"The retrospective covers the outage timeline and follow-ups.",
}

// catalogFile is the on-disk shape of a transcript catalog.
type catalogFile struct {
	Items map[string]string `yaml:"items"`
}

// loadCatalog reads a YAML transcript catalog and overlays it on the built-in
// defaults. Entries in the file win over defaults with the same item ID.
func loadCatalog(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	merged := make(map[string]string, len(defaultCatalog)+len(f.Items))
	for id, text := range defaultCatalog {
		merged[id] = text
	}
	for id, text := range f.Items {
		merged[id] = text
	}
	return merged, nil
}
