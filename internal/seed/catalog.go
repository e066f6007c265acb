// Package seed loads the starter catalog of a new installation: payroll
// variables, labors with their opening prices and the first administrator.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Catalog is the decoded seed file.
type Catalog struct {
	Variables []VariableSeed `yaml:"variables"`
	Labors    []LaborSeed    `yaml:"labors"`
}

// VariableSeed opens the first window of a payroll variable.
type VariableSeed struct {
	Name        domain.VariableName `yaml:"name"`
	Value       decimal.Decimal     `yaml:"value"`
	ValidFrom   time.Time           `yaml:"valid_from"`
	Description string              `yaml:"description"`
}

// LaborSeed creates a labor and, when Price is set, its first price window.
type LaborSeed struct {
	Code         string           `yaml:"code"`
	Name         string           `yaml:"name"`
	Description  string           `yaml:"description"`
	UnitID       string           `yaml:"unit"`
	IsSpecial    bool             `yaml:"special"`
	ContractOnly bool             `yaml:"contract_only"`
	Price        *decimal.Decimal `yaml:"price"`
	ValidFrom    time.Time        `yaml:"valid_from"`
}

// DefaultCatalog decodes the embedded seed file.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog decodes and checks a seed file.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("seed: decode catalog: %w", err)
	}
	for _, v := range c.Variables {
		if !v.Name.IsValid() {
			return nil, fmt.Errorf("seed: unknown payroll variable %q", v.Name)
		}
		if v.ValidFrom.IsZero() {
			return nil, fmt.Errorf("seed: variable %s has no valid_from", v.Name)
		}
	}
	codes := make(map[string]bool, len(c.Labors))
	for _, l := range c.Labors {
		if l.Code == "" || l.Name == "" || l.UnitID == "" {
			return nil, fmt.Errorf("seed: labor %q needs code, name and unit", l.Code)
		}
		if codes[l.Code] {
			return nil, fmt.Errorf("seed: labor code %s listed twice", l.Code)
		}
		codes[l.Code] = true
		if l.Price != nil && l.ValidFrom.IsZero() {
			return nil, fmt.Errorf("seed: labor %s has a price but no valid_from", l.Code)
		}
	}
	return &c, nil
}
