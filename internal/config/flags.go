package config

// This file binds CLI flags onto Config and layers them with the optional
// YAML config file and SOLIDNAME_* environment variables through viper.
// Precedence: flag > env > file > DefaultConfig.
// Negated flags (--no-color) are applied after parsing so defaults hold.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// SOLIDNAME_HEURISTICS_CONTAINMENT_MARGIN=3.
const EnvPrefix = "SOLIDNAME"

// viperKeys maps viper keys to the flags that override them.
var viperKeys = map[string]string{
	"group":                              "group",
	"log_file":                           "log",
	"heuristics.substrate_thickness.min": "substrate-min",
	"heuristics.substrate_thickness.max": "substrate-max",
	"heuristics.package_thickness.min":   "package-min",
	"heuristics.package_thickness.max":   "package-max",
	"heuristics.sheet_thickness_max":     "sheet-max",
	"heuristics.containment_margin":      "margin",
}

// fileConfig is the shape of the YAML config file.
type fileConfig struct {
	Group      string       `mapstructure:"group"`
	LogFile    string       `mapstructure:"log_file"`
	Heuristics Heuristics   `mapstructure:"heuristics"`
	Prefixes   []PrefixRule `mapstructure:"prefixes"`
}

// Flags holds flag values applied after parsing: negated switches and
// repeated prefix rules.
type Flags struct {
	fs         *pflag.FlagSet
	forceColor bool
	noColor    bool
	prefixes   []string
}

// BindFlags registers all flags on fs, writing straight into cfg. Call
// [Flags.Apply] once the command line has been parsed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{fs: fs}

	defineHeuristicFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, f)
	defineDisplayFlags(fs, cfg, f)
	return f
}

// defineHeuristicFlags registers the four threshold options.
func defineHeuristicFlags(fs *pflag.FlagSet, cfg *Config) {
	h := &cfg.Heuristics
	fs.Float64Var(&h.SubstrateThickness.Min, "substrate-min", h.SubstrateThickness.Min, "Substrate thickness band lower bound (mm, inclusive)")
	fs.Float64Var(&h.SubstrateThickness.Max, "substrate-max", h.SubstrateThickness.Max, "Substrate thickness band upper bound (mm, inclusive)")
	fs.Float64Var(&h.PackageThickness.Min, "package-min", h.PackageThickness.Min, "Package thickness band lower bound (mm, exclusive)")
	fs.Float64Var(&h.PackageThickness.Max, "package-max", h.PackageThickness.Max, "Package thickness band upper bound (mm, inclusive)")
	fs.Float64Var(&h.SheetThicknessMax, "sheet-max", h.SheetThicknessMax, "Conductive sheet thickness ceiling (mm)")
	fs.Float64Var(&h.ContainmentMargin, "margin", h.ContainmentMargin, "Padding around the package footprint for sub-components (mm)")
}

// defineBehaviorFlags registers group, dry-run, report, prefix and config.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.StringVarP(&cfg.SolidGroup, "group", "g", cfg.SolidGroup, "Host group holding the solids")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not rename")
	fs.StringVarP(&cfg.ReportPath, "report", "r", "", "Write a YAML run report to this path")
	fs.StringArrayVar(&f.prefixes, "prefix", nil, "Parent prefix rule parent=prefix (repeatable)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file with heuristics and prefixes")
}

// defineDisplayFlags registers --color, --no-color, verbose and --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append structured logs to file")
}

// Apply layers the config file and environment under the parsed flags,
// applies negated switches and prefix rules, and takes the snapshot path
// from args.
func (f *Flags) Apply(cfg *Config, args []string) error {
	if err := load(f.fs, cfg); err != nil {
		return err
	}

	for _, raw := range f.prefixes {
		rule, err := ParsePrefixRule(raw)
		if err != nil {
			return err
		}
		cfg.Prefixes = upsertPrefix(cfg.Prefixes, rule)
	}

	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if len(args) != 1 {
		return errors.New("need exactly one snapshot path")
	}
	cfg.SnapshotPath = args[0]
	return nil
}

// load resolves the viper-managed keys into cfg.
func load(fs *pflag.FlagSet, cfg *Config) error {
	v := viper.New()
	for key, name := range viperKeys {
		if fl := fs.Lookup(name); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfg.ConfigFile, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	cfg.SolidGroup = fc.Group
	cfg.LogFile = fc.LogFile
	cfg.Heuristics = fc.Heuristics
	cfg.Prefixes = append(cfg.Prefixes[:0:0], fc.Prefixes...)
	return nil
}

// upsertPrefix replaces the rule for the same parent or appends a new one.
func upsertPrefix(rules []PrefixRule, r PrefixRule) []PrefixRule {
	for i := range rules {
		if rules[i].Parent == r.Parent {
			rules[i] = r
			return rules
		}
	}
	return append(rules, r)
}
