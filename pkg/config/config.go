// Package config defines the immutable configuration consumed by the chart
// pipeline: division mapping tables, display-name normalization maps, the
// grade ordering, and layout constants.
//
// Configuration is loaded once at process start, either from built-in
// defaults or from a TOML file, and passed by value into the builder, sorter
// and layout engine. Nothing in the pipeline mutates it.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/myoshida/orgchart/pkg/errors"
)

// Division maps a division key to the client display names it owns.
// Declaration order in the TOML file is display order.
type Division struct {
	Key     string   `toml:"key"`
	Clients []string `toml:"clients"`
}

// DivisionOther is the trailing bucket for clients with no division mapping.
const DivisionOther = "other"

// Layout holds the column-flow layout constants.
type Layout struct {
	// ColumnsPerPage is the number of visual columns per printed page.
	ColumnsPerPage int `toml:"columns_per_page"`

	// MaxRowsPerColumn is the row budget of one column.
	MaxRowsPerColumn int `toml:"max_rows_per_column"`

	// Display widths of the spreadsheet columns making up one visual column,
	// in Excel UI units.
	WidthMargin   float64 `toml:"width_margin"`
	WidthClient   float64 `toml:"width_client"`
	WidthCustomer float64 `toml:"width_customer"`
	WidthProject  float64 `toml:"width_project"`
	WidthName     float64 `toml:"width_name"`
	WidthDept     float64 `toml:"width_dept"`
	WidthEmpty    float64 `toml:"width_empty"`
	WidthGrade    float64 `toml:"width_grade"`
	WidthGap      float64 `toml:"width_gap"`
}

// Config is the full configuration for one chart generation run.
type Config struct {
	// Title overrides the calendar label of the chart title. When empty the
	// renderer derives it from the current date.
	Title string `toml:"title"`

	// Divisions lists the division buckets in display order. A client whose
	// display name appears in no division falls into DivisionOther, which is
	// always displayed last.
	Divisions []Division `toml:"divisions"`

	// ClientDisplay maps normalized client names to display names.
	ClientDisplay map[string]string `toml:"client_display"`

	// CustomerDisplay maps normalized customer names to display names.
	CustomerDisplay map[string]string `toml:"customer_display"`

	// GradeDisplay maps raw roster grades to display grades. Mapping to the
	// empty string hides the grade.
	GradeDisplay map[string]string `toml:"grade_display"`

	// GradeOrder lists display grades from highest to lowest rank.
	GradeOrder []string `toml:"grade_order"`

	// BPPrefix marks externally-sourced staff: an employee whose department
	// starts with this prefix is BP.
	BPPrefix string `toml:"bp_prefix"`

	// ExecutiveMarker marks executives: an own-company employee whose
	// department contains this substring sorts before all graded staff.
	ExecutiveMarker string `toml:"executive_marker"`

	Layout Layout `toml:"layout"`
}

// Default returns the built-in configuration, mirroring the tables the tool
// ships with.
func Default() Config {
	return Config{
		Divisions: []Division{
			{Key: "A", Clients: []string{
				"NSD", "TISソリューションリンク", "TIS西日本", "SCSK",
				"JR九州システムソリューションズ", "TMJ", "Minoriソリューションズ",
				"JMAS", "SRA",
			}},
			{Key: "B", Clients: []string{
				"AID", "CLIS", "情報システム工学", "OBS", "ニーズウェル",
				"バルテス", "NEC", "東邦システムサイエンス", "コスモウェーブ",
				"JSOL", "リーディング・ウィン", "JMAS",
			}},
			{Key: "C", Clients: []string{
				"TMJ", "さくらKCS", "CEC", "クリエイション", "アスリーブレインズ",
				"アルティウスリンク", "TOKAIコミュニケーションズ", "クロスキャット",
				"テイクス", "コベルコシステム", "セコムトラストシステムズ",
				"トラストシステム", "キャノン電子テクノロジー",
			}},
			{Key: "D", Clients: []string{
				"DTS", "九州DTS", "ジャステック", "SIS", "フォーカスシステムズ",
				"富士ソフト", "STO", "USEN", "DTSインサイト", "NFT",
			}},
			{Key: "E", Clients: []string{
				"さつき工業協同組合",
			}},
		},
		ClientDisplay: map[string]string{
			"SCSK　Minoriソリューションズ":          "Minoriソリューションズ",
			"TISW":                          "TIS西日本",
			"NTTデータ フィナンシャルテクノロジー":          "NFT",
			"ジェーエムエーシステムズ":                  "JMAS",
			"日本電気":                          "NEC",
			"アドヴァンスト・インフォーメイション・デザイン":       "AID",
			"オービーシステム":                      "OBS",
			"さくらケーシーエス":                     "さくらKCS",
			"さくら情報システム":                     "SIS",
			"シーイーシー":                        "CEC",
			"ソーシャルトランジットオフィス":               "STO",
			"-":                             "本社",
		},
		CustomerDisplay: map[string]string{
			"シーイーシー":        "CEC",
			"ヴェオリア・ジェネッツ":   "ヴェオリアジェネッツ",
		},
		GradeDisplay: map[string]string{
			"ＧＭ": "GM",
			"ＳＭ": "SM",
			"ＭＡ": "MA",
			"ＣＦ": "CF",
			"ＥＮ": "EN",
			"ＮＣ": "NC",
			"なし": "",
		},
		GradeOrder:      []string{"GM", "SM", "MA", "CF", "EN", "NC", ""},
		BPPrefix:        "B推",
		ExecutiveMarker: "役員",
		Layout: Layout{
			ColumnsPerPage:   5,
			MaxRowsPerColumn: 90,
			WidthMargin:      2.33,
			WidthClient:      1.56,
			WidthCustomer:    1.56,
			WidthProject:     1.56,
			WidthName:        10.33,
			WidthDept:        23.67,
			WidthEmpty:       3.22,
			WidthGrade:       7.11,
			WidthGap:         1.22,
		},
	}
}

// Load reads a TOML configuration file and merges it over the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants that would make a run fail.
func (c Config) Validate() error {
	if c.Layout.ColumnsPerPage <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"columns_per_page must be positive, got %d", c.Layout.ColumnsPerPage)
	}
	if c.Layout.MaxRowsPerColumn <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"max_rows_per_column must be positive, got %d", c.Layout.MaxRowsPerColumn)
	}
	seen := make(map[string]bool, len(c.Divisions))
	for _, d := range c.Divisions {
		if d.Key == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "division with empty key")
		}
		if seen[d.Key] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate division key %q", d.Key)
		}
		seen[d.Key] = true
	}
	return nil
}

// DivisionFor returns the division key owning the given client display name.
// A client registered under several divisions belongs to the last one
// declaring it; clients registered under no division map to DivisionOther.
func (c Config) DivisionFor(clientDisplay string) string {
	key := DivisionOther
	for _, d := range c.Divisions {
		for _, name := range d.Clients {
			if name == clientDisplay {
				key = d.Key
			}
		}
	}
	return key
}

// DivisionOrder returns the configured division keys in display order,
// with DivisionOther appended last.
func (c Config) DivisionOrder() []string {
	order := make([]string, 0, len(c.Divisions)+1)
	for _, d := range c.Divisions {
		order = append(order, d.Key)
	}
	return append(order, DivisionOther)
}

// GradeRank returns the sort rank of a display grade per GradeOrder.
// Unknown grades rank after every configured grade.
func (c Config) GradeRank(grade string) int {
	for i, g := range c.GradeOrder {
		if g == grade {
			return i
		}
	}
	return len(c.GradeOrder)
}
