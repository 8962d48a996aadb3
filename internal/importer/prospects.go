package importer

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/growth-cli/internal/model"
	"github.com/sells-group/growth-cli/internal/tabular"
)

// Prospect sheet columns. Only domain and link_type are required.
const (
	colDomain               = "domain"
	colDomainAuthority      = "domain_authority"
	colRelevanceScore       = "relevance_score"
	colMonthlyTraffic       = "monthly_traffic"
	colSpamScore            = "spam_score"
	colLinkType             = "link_type"
	colRequiresPayment      = "requires_payment"
	colExistingRelationship = "existing_relationship"
	colPreferredAnchors     = "preferred_anchors"
	colNotes                = "notes"
)

// LoadProspects reads backlink prospects from YAML, JSON, CSV or XLSX. Sheet
// formats need a header row naming the columns; preferred anchors are
// separated by ";" or "|".
func LoadProspects(path string) ([]model.Prospect, error) {
	var (
		prospects []model.Prospect
		err       error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		prospects, err = loadProspectSheet(path)
	default:
		prospects, err = loadList[model.Prospect](path, "prospects")
	}
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, prospects); err != nil {
		return nil, err
	}

	zap.L().Info("importer: loaded prospects", zap.String("path", path), zap.Int("count", len(prospects)))
	return prospects, nil
}

func loadProspectSheet(path string) ([]model.Prospect, error) {
	tbl, err := tabular.ReadFile(path, tabular.Options{Comment: '#'})
	if err != nil {
		return nil, eris.Wrap(err, "importer: read prospects")
	}
	for _, col := range []string{colDomain, colLinkType} {
		if tbl.Index(col) < 0 {
			return nil, eris.Errorf("importer: %s is missing required column %q", path, col)
		}
	}

	out := make([]model.Prospect, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		p, err := prospectFromRow(tbl, row)
		if err != nil {
			// Row numbers are 1-based and count the header.
			return nil, eris.Wrapf(err, "importer: %s row %d", path, i+2)
		}
		out = append(out, p)
	}
	return out, nil
}

func prospectFromRow(tbl *tabular.Table, row []string) (model.Prospect, error) {
	p := model.Prospect{
		Domain:   tbl.Get(row, colDomain),
		LinkType: model.LinkType(strings.ToLower(tbl.Get(row, colLinkType))),
		Notes:    tbl.Get(row, colNotes),
	}

	var errs []string
	parseFloat := func(col string, dst *float64) {
		s := tbl.Get(row, col)
		if s == "" {
			return
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			errs = append(errs, col+": "+strconv.Quote(s)+" is not a number")
			return
		}
		*dst = v
	}
	parseBool := func(col string, dst *bool) {
		s := tbl.Get(row, col)
		if s == "" {
			return
		}
		switch strings.ToLower(s) {
		case "1", "true", "yes", "y":
			*dst = true
		case "0", "false", "no", "n":
			*dst = false
		default:
			errs = append(errs, col+": "+strconv.Quote(s)+" is not a boolean")
		}
	}

	parseFloat(colDomainAuthority, &p.DomainAuthority)
	parseFloat(colRelevanceScore, &p.RelevanceScore)
	parseFloat(colSpamScore, &p.SpamScore)
	var traffic float64
	parseFloat(colMonthlyTraffic, &traffic)
	p.MonthlyTraffic = int64(traffic)
	parseBool(colRequiresPayment, &p.RequiresPayment)
	parseBool(colExistingRelationship, &p.ExistingRelationship)

	if s := tbl.Get(row, colPreferredAnchors); s != "" {
		for _, a := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' }) {
			if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
				p.PreferredAnchors = append(p.PreferredAnchors, model.AnchorCategory(a))
			}
		}
	}

	if len(errs) > 0 {
		return model.Prospect{}, eris.New(strings.Join(errs, "; "))
	}
	return p, nil
}
