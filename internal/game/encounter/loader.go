package encounter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// IsJSON reports whether source names a JSON content file.
func IsJSON(source string) bool {
	return strings.EqualFold(filepath.Ext(source), ".json")
}

// Unmarshal decodes content data into v, using encoding/json for .json
// sources and YAML for everything else. The YAML decoder does not accept
// every JSON escape (\/ for one), so JSON files never go through it.
func Unmarshal(source string, data []byte, v any) error {
	if IsJSON(source) {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// LoadDefinitionsFromBytes parses a sequence of encounter records.
//
// Postcondition: Returns validated definitions, or an error; missing fields
// yield a *ConfigurationError.
func LoadDefinitionsFromBytes(source string, data []byte) ([]Definition, error) {
	var defs []Definition
	if err := Unmarshal(source, data, &defs); err != nil {
		return nil, fmt.Errorf("parsing encounter definitions from %s: %w", source, err)
	}
	if err := ValidateAll(source, defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// ValidateAll validates each definition in order.
//
// Postcondition: Returns an error when defs is empty.
func ValidateAll(source string, defs []Definition) error {
	if len(defs) == 0 {
		return fmt.Errorf("no encounter definitions in %s", source)
	}
	for i := range defs {
		if err := defs[i].Validate(source, i); err != nil {
			return err
		}
	}
	return nil
}
