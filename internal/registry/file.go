package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileSpec is the on-disk shape of a registry override.
type fileSpec struct {
	Lists      map[ListKey][]string `yaml:"lists"`
	Blueprints []Blueprint          `yaml:"blueprints"`
}

// LoadFile reads a YAML registry override and merges it over the defaults.
// Lists named in the file replace the default list of the same key; a
// non-empty blueprints section replaces all default blueprints.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: read %s", path)
	}

	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, eris.Wrapf(err, "registry: parse %s", path)
	}

	lists := make(map[ListKey][]string, len(defaultLists)+len(spec.Lists))
	for k, v := range defaultLists {
		lists[k] = v
	}
	for k, v := range spec.Lists {
		lists[k] = v
	}

	blueprints := defaultBlueprints
	if len(spec.Blueprints) > 0 {
		blueprints = spec.Blueprints
	}

	r, err := New(lists, blueprints)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: load %s", path)
	}

	zap.L().Info("registry: loaded override",
		zap.String("path", path),
		zap.Int("lists_overridden", len(spec.Lists)),
		zap.Int("blueprints", len(r.blueprints)),
	)
	return r, nil
}
