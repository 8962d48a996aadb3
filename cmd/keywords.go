package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/growth-cli/internal/keywords"
	"github.com/sells-group/growth-cli/internal/registry"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Generate the SEO keyword universe",
	Long: `Expands the keyword blueprints over the component lists into a bounded,
de-duplicated keyword universe. Filters are case-insensitive allow-lists.

Examples:
  # Default universe (keywords.default_limit from config)
  keywords

  # 50 BGMI tournament keywords
  keywords --limit 50 --games bgmi --intents tournament

  # English-only, no year variants, exported to Excel
  keywords --no-hindi --no-years --format xlsx --output keywords.xlsx`,
	RunE: runKeywords,
}

func init() {
	f := keywordsCmd.Flags()
	f.Int("limit", 0, "maximum number of keywords (0=use config default)")
	f.String("games", "", "comma-separated games to keep (e.g., bgmi,free fire)")
	f.String("intents", "", "comma-separated intents to keep")
	f.String("geo", "", "comma-separated geo targets to keep")
	f.String("modifiers", "", "comma-separated modifiers to keep")
	f.Bool("no-hindi", false, "exclude Hindi phrase blueprints")
	f.Bool("no-years", false, "exclude year blueprints")
	f.String("registry", "", "YAML registry override (overrides config)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", formatTable, "output format: table, csv or xlsx")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if err := validateFormat("keywords", format); err != nil {
		return err
	}

	opts := keywordOptions(cmd, cfg.Keywords.DefaultLimit)

	gen, err := keywordGenerator(cmd)
	if err != nil {
		return err
	}

	var list []string
	switch {
	case gen != nil:
		list = gen.Generate(opts)
	case isDefaultUniverse(opts):
		list = keywords.Universe()
	default:
		list = keywords.Generate(opts)
	}

	zap.L().Info("keywords: generated", zap.Int("limit", opts.Limit), zap.Int("count", len(list)))

	rows := make([][]string, len(list))
	for i, kw := range list {
		rows[i] = []string{strconv.Itoa(i + 1), kw}
	}
	return writeResults("keywords", format, outputPath, []string{"rank", "keyword"}, rows)
}

// keywordOptions builds generator options from flags. The limit falls back
// to defaultLimit, then to the default universe size.
func keywordOptions(cmd *cobra.Command, defaultLimit int) keywords.Options {
	opts := keywords.Options{Limit: keywords.DefaultUniverseLimit}
	if defaultLimit > 0 {
		opts.Limit = defaultLimit
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		opts.Limit = limit
	}

	if v, _ := cmd.Flags().GetString("games"); v != "" {
		opts.Games = splitAndTrim(v)
	}
	if v, _ := cmd.Flags().GetString("intents"); v != "" {
		opts.Intents = splitAndTrim(v)
	}
	if v, _ := cmd.Flags().GetString("geo"); v != "" {
		opts.GeoTargets = splitAndTrim(v)
	}
	if v, _ := cmd.Flags().GetString("modifiers"); v != "" {
		opts.Modifiers = splitAndTrim(v)
	}
	opts.ExcludeHindi, _ = cmd.Flags().GetBool("no-hindi")
	opts.ExcludeYears, _ = cmd.Flags().GetBool("no-years")

	return opts
}

// isDefaultUniverse reports whether opts asks for exactly the memoized
// default universe.
func isDefaultUniverse(opts keywords.Options) bool {
	return opts.Limit == keywords.DefaultUniverseLimit &&
		len(opts.Games) == 0 && len(opts.Intents) == 0 &&
		len(opts.GeoTargets) == 0 && len(opts.Modifiers) == 0 &&
		!opts.ExcludeHindi && !opts.ExcludeYears
}

// keywordGenerator returns a generator over the override registry, or nil
// when the built-in registry is in use.
func keywordGenerator(cmd *cobra.Command) (*keywords.Generator, error) {
	path := cfg.Keywords.RegistryPath
	if v, _ := cmd.Flags().GetString("registry"); v != "" {
		path = v
	}
	if path == "" {
		return nil, nil
	}

	reg, err := registry.LoadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "keywords: load registry")
	}
	return keywords.NewGenerator(reg), nil
}
