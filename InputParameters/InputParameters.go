package InputParameters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"github.com/rs/zerolog/log"

	"github.com/notargets/gomesh/utils"
)

// Parameters obtained from the YAML or TOML build file
type BuildParameters struct {
	Title            string `yaml:"Title" json:"Title" toml:"Title"`
	GridFile         string `yaml:"GridFile" json:"GridFile" toml:"GridFile"`
	Sample           string `yaml:"Sample" json:"Sample" toml:"Sample"`
	Workers          int    `yaml:"Workers" json:"Workers" toml:"Workers"`
	CheckOrientation bool   `yaml:"CheckOrientation" json:"CheckOrientation" toml:"CheckOrientation"`
	PlaceGhosts      bool   `yaml:"PlaceGhosts" json:"PlaceGhosts" toml:"PlaceGhosts"`
	LogLevel         string `yaml:"LogLevel" json:"LogLevel" toml:"LogLevel"`
	// CellTypes restricts the accepted cell shapes, empty accepts all
	CellTypes []string `yaml:"CellTypes" json:"CellTypes" toml:"CellTypes"`
}

// Parse reads YAML content. ghodss/yaml goes through JSON, so the json tags
// carry the field names.
func (bp *BuildParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BuildParameters) ParseTOML(data []byte) error {
	return toml.Unmarshal(data, bp)
}

// ReadFile dispatches on extension: .toml is TOML, anything else is YAML
func ReadFile(filename string) (bp *BuildParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	bp = &BuildParameters{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = bp.ParseTOML(data)
	default:
		err = bp.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if err = bp.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func (bp *BuildParameters) Validate() error {
	if bp.GridFile != "" && bp.Sample != "" {
		return fmt.Errorf("GridFile and Sample are mutually exclusive")
	}
	if bp.Workers < 0 {
		return fmt.Errorf("Workers must not be negative, got %d", bp.Workers)
	}
	_, err := bp.AllowedCellTypes()
	return err
}

// AllowedCellTypes parses CellTypes, nil when every type is accepted
func (bp *BuildParameters) AllowedCellTypes() (types []utils.CellType, err error) {
	for _, name := range bp.CellTypes {
		ct, ok := utils.ParseCellType(name)
		if !ok || !ct.IsCell() {
			return nil, fmt.Errorf("CellTypes: %q is not a cell type", name)
		}
		types = append(types, ct)
	}
	return
}

func (bp *BuildParameters) Print() {
	log.Info().
		Str("Title", bp.Title).
		Str("GridFile", bp.GridFile).
		Str("Sample", bp.Sample).
		Int("Workers", bp.Workers).
		Bool("CheckOrientation", bp.CheckOrientation).
		Bool("PlaceGhosts", bp.PlaceGhosts).
		Strs("CellTypes", bp.CellTypes).
		Msg("build parameters")
}
