// Package importer loads influencer, campaign, prospect and velocity plan
// records from local files and validates them before they reach the scorers.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/growth-cli/internal/model"
)

// validator is implemented by every record type the importer loads.
type validator interface {
	Validate() error
}

// LoadInfluencers reads a YAML or JSON list of influencers. The list may be
// the document root or live under an "influencers" key.
func LoadInfluencers(path string) ([]model.Influencer, error) {
	list, err := loadList[model.Influencer](path, "influencers")
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, list); err != nil {
		return nil, err
	}
	if err := uniqueInfluencerIDs(path, list); err != nil {
		return nil, err
	}

	zap.L().Info("importer: loaded influencers", zap.String("path", path), zap.Int("count", len(list)))
	return list, nil
}

// LoadCampaign reads a single YAML or JSON campaign brief.
func LoadCampaign(path string) (*model.Campaign, error) {
	if err := requireStructured(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "importer: read %s", path)
	}

	var c model.Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, eris.Wrapf(err, "importer: parse %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, eris.Wrapf(err, "importer: %s", path)
	}

	zap.L().Info("importer: loaded campaign", zap.String("path", path), zap.String("campaign_id", c.ID))
	return &c, nil
}

// LoadVelocityPlan reads a YAML or JSON list of monthly phases. The list may
// be the document root or live under a "plan" key.
func LoadVelocityPlan(path string) ([]model.VelocityPhase, error) {
	plan, err := loadList[model.VelocityPhase](path, "plan")
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, plan); err != nil {
		return nil, err
	}

	zap.L().Info("importer: loaded velocity plan", zap.String("path", path), zap.Int("phases", len(plan)))
	return plan, nil
}

func requireStructured(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return nil
	default:
		return eris.Errorf("importer: unsupported file type %q for %s (want .yaml, .yml or .json)", filepath.Ext(path), path)
	}
}

// loadList decodes a sequence that is either the document root or the value
// of key in a root mapping. JSON is decoded by the same YAML parser.
func loadList[T any](path, key string) ([]T, error) {
	if err := requireStructured(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "importer: read %s", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "importer: parse %s", path)
	}
	if len(doc.Content) == 0 {
		return nil, eris.Errorf("importer: %s is empty", path)
	}

	node := doc.Content[0]
	if node.Kind == yaml.MappingNode {
		node = mappingValue(node, key)
		if node == nil {
			return nil, eris.Errorf("importer: %s has no %q list", path, key)
		}
	}
	if node.Kind != yaml.SequenceNode {
		return nil, eris.Errorf("importer: %s: expected a list at line %d", path, node.Line)
	}

	var out []T
	if err := node.Decode(&out); err != nil {
		return nil, eris.Wrapf(err, "importer: decode %s", path)
	}
	return out, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// validateAll rejects the file on its first invalid record.
func validateAll[T any](path string, records []T) error {
	for i := range records {
		v, ok := any(&records[i]).(validator)
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			return eris.Wrapf(err, "importer: %s record %d", path, i+1)
		}
	}
	return nil
}

// uniqueInfluencerIDs rejects rosters that reuse an id. Referral codes and
// tracking links are keyed by id.
func uniqueInfluencerIDs(path string, list []model.Influencer) error {
	seen := make(map[string]int, len(list))
	var errs []string
	for i, inf := range list {
		id := strings.TrimSpace(inf.ID)
		if first, ok := seen[id]; ok {
			errs = append(errs, fmt.Sprintf("record %d reuses id %q from record %d", i+1, id, first))
			continue
		}
		seen[id] = i + 1
	}
	if len(errs) > 0 {
		return eris.Errorf("importer: %s: duplicate influencer ids: %s", path, strings.Join(errs, "; "))
	}
	return nil
}
