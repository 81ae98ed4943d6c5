// Package config holds the runtime configuration for discovery, renaming, and
// collection generation. Defaults are compiled in; an optional HCL file
// overrides them.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// CategorySet names a folder family and selects its grammar, directory
// subtree, and static fallback models.
type CategorySet string

const (
	SetWGSCSBD CategorySet = "wgs_csbd"
	SetGBDFMCR CategorySet = "gbdf_mcr"
)

// subtree returns the directory component a set uses under the source, dest,
// and collections roots.
func (s CategorySet) subtree() string {
	if s == SetGBDFMCR {
		return "GBDF"
	}
	return "WGS_CSBD"
}

// Header is one fixed request header emitted into every generated collection.
type Header struct {
	Name  string `hcl:"name,label"`
	Value string `hcl:"value"`
}

// StaticModel is a fallback model definition used when dynamic discovery
// finds no suite folders. Paths are relative to the working directory, not to
// the configured roots.
type StaticModel struct {
	Set            string `hcl:"set,label"`
	Suite          string `hcl:"suite,label"`
	EditID         string `hcl:"edit_id"`
	ResponseCode   string `hcl:"response_code"`
	SourceDir      string `hcl:"source_dir"`
	DestDir        string `hcl:"dest_dir"`
	CollectionName string `hcl:"collection_name"`
	CollectionFile string `hcl:"collection_file"`
}

// Config is the full runtime configuration.
type Config struct {
	SourceRoot      string `hcl:"source_root,optional"`
	DestRoot        string `hcl:"dest_root,optional"`
	CollectionsRoot string `hcl:"collections_root,optional"`

	BaseURL     string `hcl:"base_url,optional"`
	RequestPath string `hcl:"request_path,optional"`

	Headers      []Header      `hcl:"header,block"`
	StaticModels []StaticModel `hcl:"static_model,block"`
}

// Default returns the compiled-in configuration, matching the directory
// layout and request headers the historical batches were produced with.
func Default() *Config {
	return &Config{
		SourceRoot:      "source_folder",
		DestRoot:        "renaming_jsons",
		CollectionsRoot: "postman_collections",
		BaseURL:         "http://localhost:3000",
		RequestPath:     "/api/validate/{{tc_id}}",
		Headers: []Header{
			{Name: "Content-Type", Value: "application/json"},
			{Name: "meta-transid", Value: "20220117181853TMBL20359Cl893580999"},
			{Name: "meta-src-envrmt", Value: "IMSH"},
		},
		StaticModels: defaultStaticModels(),
	}
}

// Load reads an HCL configuration file and fills any field the file leaves
// unset from the compiled-in defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	def := Default()
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = def.SourceRoot
	}
	if cfg.DestRoot == "" {
		cfg.DestRoot = def.DestRoot
	}
	if cfg.CollectionsRoot == "" {
		cfg.CollectionsRoot = def.CollectionsRoot
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.RequestPath == "" {
		cfg.RequestPath = def.RequestPath
	}
	if len(cfg.Headers) == 0 {
		cfg.Headers = def.Headers
	}
	if len(cfg.StaticModels) == 0 {
		cfg.StaticModels = def.StaticModels
	}
	return &cfg, nil
}

// SourceDirFor returns the source directory scanned for a category set.
func (c *Config) SourceDirFor(set CategorySet) string {
	return c.SourceRoot + "/" + set.subtree()
}

// DestRootFor returns the destination root for a category set.
func (c *Config) DestRootFor(set CategorySet) string {
	return c.DestRoot + "/" + set.subtree()
}

// CollectionsDirFor returns the collections output root for a category set.
func (c *Config) CollectionsDirFor(set CategorySet) string {
	return c.CollectionsRoot + "/" + set.subtree()
}

// StaticModelsFor filters the static fallback table by category set.
func (c *Config) StaticModelsFor(set CategorySet) []StaticModel {
	var out []StaticModel
	for _, m := range c.StaticModels {
		if m.Set == string(set) {
			out = append(out, m)
		}
	}
	return out
}

func defaultStaticModels() []StaticModel {
	wgs := []struct {
		suite, edit, code, folder, destFolder, collName, collFile string
	}{
		{"01", "RULEEM000001", "W04",
			"TS_01_Covid_WGS_CSBD_RULEEM000001_W04_sur",
			"TS_01_Covid_WGS_CSBD_RULEEM000001_W04_dis",
			"TS_01_Covid_Collection", "covid_wgs_csbd_RULEEM000001_w04.json"},
		{"02", "RULELATE000001", "00W17",
			"TS_02_Laterality Policy-Disgnosis to Diagnosis_WGS_CSBD_RULELATE000001_00W17_sur",
			"TS_02_Laterality Policy-Disgnosis to Diagnosis_WGS_CSBD_RULELATE000001_00W17_dis",
			"TS_02_Laterality_Collection", "laterality_wgs_csbd_RULELATE000001_00w17.json"},
		{"03", "RULEREVE000005", "00W28",
			"TS_03_Revenue_SubEdit5_WGS_CSBD_RULEREVE000005_00W28_sur",
			"TS_03_Revenue_SubEdit5_WGS_RULEREVE000005_00W28",
			"TS_03_Revenue_SubEdit5_Collection", "revenue_wgs_csbd_RULEREVE000005_00w28.json"},
		{"04", "RULEREVE000004", "00W28",
			"TS_04_Revenue_SubEdit4_WGS_CSBD_RULEREVE000004_00W28_sur",
			"TS_04_Revenue_SubEdit4_WGS_RULEREVE000004_00W28",
			"TS_04_Revenue_SubEdit4_Collection", "revenue_wgs_csbd_RULEREVE000004_00w28.json"},
		{"05", "RULEREVE000003", "00W28",
			"TS_05_Revenue_SubEdit3_WGS_CSBD_RULEREVE000003_00W28_sur",
			"TS_05_Revenue_SubEdit3_WGS_RULEREVE000003_00W28",
			"TS_05_Revenue_SubEdit3_Collection", "revenue_wgs_csbd_RULEREVE000003_00w28.json"},
		{"06", "RULEREVE000002", "00W28",
			"TS_06_Revenue_SubEdit2_WGS_CSBD_RULEREVE000002_00W28_sur",
			"TS_06_Revenue_SubEdit2_WGS_RULEREVE000002_00W28",
			"TS_06_Revenue_SubEdit2_Collection", "revenue_wgs_csbd_RULEREVE000002_00w28.json"},
		{"07", "RULEREVE000001", "00W28",
			"TS_07_Revenue_SubEdit1_WGS_CSBD_RULEREVE000001_00W28_sur",
			"TS_07_Revenue_SubEdit1_WGS_RULEREVE000001_00W28",
			"TS_07_Revenue_SubEdit1_Collection", "revenue_wgs_csbd_RULEREVE000001_00w28.json"},
		{"08", "RULELAB0000009", "00W13",
			"TS_08_LabPanel_WGS_CSBD_RULELAB0000009_00W13_sur",
			"TS_08_LabPanel_WGS_RULELAB0000009_00W13",
			"TS_08_LabPanel_Collection", "lab_wgs_csbd_RULELAB0000009_00w13.json"},
		{"09", "RULEDEVI000003", "00W13",
			"TS_09_DeviceDependent_WGS_CSBD_RULEDEVI000003_00W13_sur",
			"TS_09_DeviceDependent_WGS_RULEDEVI000003_00W13",
			"TS_09_DeviceDependent_Collection", "device_wgs_csbd_RULEDEVI000003_00w13.json"},
		{"10", "RULERECO000001", "00W34",
			"TS_10_RecoveryRoom_WGS_CSBD_RULERECO000001_00W34_sur",
			"TS_10_RecoveryRoom_WGS_RULERECO000001_00W34",
			"TS_10_RecoveryRoom_Collection", "recovery_wgs_csbd_RULERECO000001_00w34.json"},
		{"11", "RULERECO000003", "00W26",
			"TS_11_RevenueHCPCS_WGS_CSBD_RULERECO000003_00W26_sur",
			"TS_11_RevenueHCPCS_WGS_RULERECO000003_00W26",
			"TS_11_RevenueHCPCS_Collection", "revenue_wgs_csbd_RULERECO000003_00w26.json"},
		{"12", "RULEINCI000001", "00W34",
			"TS_12_Incidental_WGS_CSBD_RULEINCI000001_00W34_sur",
			"TS_12_Incidental_WGS_RULEINCI000001_00W34",
			"TS_12_Incidental_Collection", "incidentcal_wgs_csbd_RULEINCI000001_00w34.json"},
		{"13", "RULERCE0000006", "00W06",
			"TS_13_RevenueModel_v3_WGS_CSBD_RULERCE0000006_00W06_sur",
			"TS_13_RevenueModel_v3_WGS_RULERCE0000006_00W06",
			"TS_13_RevenueModel_v3_Collection", "revenue_model_wgs_csbd_RULERCE0000006_00w06.json"},
		{"14", "RULERCE000001", "00W26",
			"TS_14_HCPCSRevenue_WGS_CSBD_RULERCE000001_00W26_sur",
			"TS_14_HCPCSRevenue_WGS_RULERCE000001_00W26",
			"TS_14_HCPCSRevenue_Collection", "hcpcs_wgs_csbd_RULERCE000001_00w26.json"},
		{"15", "RULERCE000005", "00W06",
			"TS_15_RevenueModel_WGS_CSBD_RULERCE000005_00W06_sur",
			"TS_15_RevenueModel_WGS_RULERCE000005_00W06",
			"TS_15_RevenueModel_Collection", "revenue_wgs_csbd_RULERCE000005_00w06.json"},
		{"46", "RULEEM000046", "00W46",
			"TS_46_MultipleEM_WGS_CSBD_RULEEM000046_00W46_sur",
			"TS_46_MultipleEM_WGS_RULEEM000046_00W46",
			"TS_46_MultipleEM_Collection", "multiple_em_wgs_csbd_RULEEM000046_00w46.json"},
	}

	models := make([]StaticModel, 0, len(wgs)+1)
	for _, m := range wgs {
		models = append(models, StaticModel{
			Set:            string(SetWGSCSBD),
			Suite:          m.suite,
			EditID:         m.edit,
			ResponseCode:   m.code,
			SourceDir:      "source_folder/WGS_CSBD/" + m.folder + "/regression",
			DestDir:        "renaming_jsons/WGS_CSBD/" + m.destFolder + "/regression",
			CollectionName: m.collName,
			CollectionFile: m.collFile,
		})
	}
	models = append(models, StaticModel{
		Set:            string(SetGBDFMCR),
		Suite:          "01",
		EditID:         "RULEEM000001",
		ResponseCode:   "v04",
		SourceDir:      "source_folder/GBDF/TS_47_Covid_gbdf_mcr_RULEEM000001_v04_sur/regression",
		DestDir:        "renaming_jsons/GBDF/TS_47_Covid_gbdf_mcr_RULEEM000001_v04_dis/regression",
		CollectionName: "TS_47_Covid_gbdf_mcr_Collection",
		CollectionFile: "covid_gbdf_mcr_RULEEM000001_v04.json",
	})
	return models
}
