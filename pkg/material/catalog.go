package material

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Catalog maps glass names to their dispersion models. The default catalog
// holds the built-in coefficient tables; additional glasses can be merged
// in from a YAML description.
type Catalog map[string]Glass

// DefaultCatalog returns a catalog of the built-in glasses.
func DefaultCatalog() Catalog {
	return Catalog{
		"CaF2":         CaF2,
		"TSU2":         TSU2,
		"TSU4":         TSU4,
		"TSU5":         TSU5,
		"TSU6":         TSU6,
		"TSU7":         TSU7,
		"fused-silica": FusedSilica,
		"N-BAF10":      NBAF10,
		"N-SF6":        NSF6,
		"N-BK7":        NBK7,
		"SF2":          SF2,
	}
}

// Lookup returns the dispersion model for a glass name.
func (c Catalog) Lookup(name string) (Glass, bool) {
	g, ok := c[name]
	return g, ok
}

// map the YAML glass description to the dispersion models
type catalogFile struct {
	Glasses []glassEntry `yaml:"glasses"`
}

type glassEntry struct {
	Name         string    `yaml:"name"`
	Model        string    `yaml:"model"`
	Coefficients []float64 `yaml:"coefficients"`
}

// LoadCatalog reads glass definitions from a YAML description and merges
// them over the default catalog. Each entry names a model, "polynomial" or
// "sellmeier", with six coefficients: a₀..a₅ for polynomial glasses, or
// B₁ B₂ B₃ C₁ C₂ C₃ for Sellmeier glasses.
//
// Duplicate names within the file and unknown model names are rejected;
// entries may shadow built-in glasses.
func LoadCatalog(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read glass catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse glass catalog: %w", err)
	}

	catalog := DefaultCatalog()
	seen := make(map[string]bool)
	for _, entry := range file.Glasses {
		if entry.Name == "" {
			return nil, fmt.Errorf("glass entry missing a name")
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("glass %q defined twice", entry.Name)
		}
		seen[entry.Name] = true

		if len(entry.Coefficients) != 6 {
			return nil, fmt.Errorf("glass %q: expected 6 coefficients, got %d",
				entry.Name, len(entry.Coefficients))
		}

		switch entry.Model {
		case "polynomial":
			var p Polynomial
			copy(p[:], entry.Coefficients)
			catalog[entry.Name] = p
		case "sellmeier":
			c := entry.Coefficients
			catalog[entry.Name] = Sellmeier{
				B1: c[0], B2: c[1], B3: c[2],
				C1: c[3], C2: c[4], C3: c[5],
			}
		default:
			return nil, fmt.Errorf("glass %q: unknown model %q", entry.Name, entry.Model)
		}
	}
	return catalog, nil
}
