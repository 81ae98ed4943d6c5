package discover

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishnupriyancode/renaming-postman-final/internal/config"
	"github.com/vishnupriyancode/renaming-postman-final/internal/logging"
	"github.com/vishnupriyancode/renaming-postman-final/internal/naming"
)

func newDiscoverer(t *testing.T) (*Discoverer, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	log, err := logging.New(logging.Options{Color: logging.ColorNever})
	require.NoError(t, err)
	return &Discoverer{FS: fs, Config: config.Default(), Log: log}, fs
}

func mkdir(t *testing.T, fs billy.Filesystem, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(path, 0o755))
}

func TestDiscover(t *testing.T) {
	d, fs := newDiscoverer(t)
	mkdir(t, fs, "source_folder/WGS_CSBD/TS_7_REVENUE_WGS_CSBD_rvn011_00W11_sur/regression")
	mkdir(t, fs, "source_folder/WGS_CSBD/TS_23_Covid_WGS_CSBD_cvd001_00C01_sur/regression")
	mkdir(t, fs, "source_folder/WGS_CSBD/unrelated_folder")

	models, err := d.Discover(config.SetWGSCSBD)
	require.NoError(t, err)
	require.Len(t, models, 2)

	// Sorted by normalized suite number.
	assert.Equal(t, "07", models[0].Suite)
	assert.Equal(t, "7", models[0].SuiteRaw)
	assert.Equal(t, "rvn011", models[0].EditID)
	assert.Equal(t, "00W11", models[0].ResponseCode)
	assert.Equal(t, naming.CategoryRevenue, models[0].Category)
	assert.Equal(t,
		"source_folder/WGS_CSBD/TS_7_REVENUE_WGS_CSBD_rvn011_00W11_sur/regression",
		models[0].SourcePath)
	assert.Equal(t,
		"renaming_jsons/WGS_CSBD/TS_7_REVENUE_WGS_CSBD_rvn011_00W11_dis/regression",
		models[0].DestPath)
	assert.Equal(t, "ts_07_collection", models[0].CollectionName)
	assert.Equal(t, "revenue_wgs_csbd_rvn011_00w11.json", models[0].CollectionFile)

	assert.Equal(t, "23", models[1].Suite)
	assert.Equal(t, naming.CategoryCovid, models[1].Category)
	assert.Equal(t, "TS_23_Covid_Collection", models[1].CollectionName)
	assert.Equal(t, "covid_wgs_csbd_cvd001_00c01.json", models[1].CollectionFile)
}

func TestDiscoverFlatDest(t *testing.T) {
	d, fs := newDiscoverer(t)
	d.FlatDest = true
	mkdir(t, fs, "source_folder/WGS_CSBD/TS_07_REVENUE_WGS_CSBD_rvn011_00W11_sur/regression")

	models, err := d.Discover(config.SetWGSCSBD)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t,
		"renaming_jsons/TS_07_REVENUE_WGS_CSBD_rvn011_00W11_dis/regression",
		models[0].DestPath)
}

func TestDiscoverAltSet(t *testing.T) {
	d, fs := newDiscoverer(t)
	d.FlatDest = true // ignored for the GBDF family
	mkdir(t, fs, "source_folder/GBDF/TS_47_Covid_gbdf_mcr_RULEEM000001_v04_sur/regression")

	models, err := d.Discover(config.SetGBDFMCR)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, config.SetGBDFMCR, models[0].Set)
	assert.Equal(t, naming.CategoryCovidGBDFMCR, models[0].Category)
	assert.Equal(t,
		"renaming_jsons/GBDF/TS_47_Covid_gbdf_mcr_RULEEM000001_v04_dis/regression",
		models[0].DestPath)
	assert.Equal(t, "covid_gbdf_mcr_RULEEM000001_v04.json", models[0].CollectionFile)
}

func TestDiscoverSkipsWithoutRegression(t *testing.T) {
	d, fs := newDiscoverer(t)
	mkdir(t, fs, "source_folder/WGS_CSBD/TS_07_REVENUE_WGS_CSBD_rvn011_00W11_sur")
	mkdir(t, fs, "source_folder/WGS_CSBD/TS_08_REVENUE_WGS_CSBD_rvn012_00W12_sur/regression")

	models, err := d.Discover(config.SetWGSCSBD)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "08", models[0].Suite)
}

func TestDiscoverIgnoresLooseFiles(t *testing.T) {
	d, fs := newDiscoverer(t)
	mkdir(t, fs, "source_folder/WGS_CSBD/TS_07_REVENUE_WGS_CSBD_rvn011_00W11_sur/regression")
	require.NoError(t, util.WriteFile(fs, "source_folder/WGS_CSBD/notes.txt", []byte("x"), 0o644))

	models, err := d.Discover(config.SetWGSCSBD)
	require.NoError(t, err)
	assert.Len(t, models, 1)
}

func TestDiscoverMissingRootFails(t *testing.T) {
	d, _ := newDiscoverer(t)
	_, err := d.Discover(config.SetWGSCSBD)
	require.Error(t, err)
}

func TestDiscoverStaticFallback(t *testing.T) {
	d, fs := newDiscoverer(t)
	mkdir(t, fs, "source_folder/WGS_CSBD")

	models, err := d.Discover(config.SetWGSCSBD)
	require.NoError(t, err)
	require.Len(t, models, 16)
	assert.Equal(t, "01", models[0].Suite)
	assert.Equal(t, "RULEEM000001", models[0].EditID)
	assert.Equal(t, "TS_01_Covid_Collection", models[0].CollectionName)
	assert.Equal(t, "TS_01_Covid_WGS_CSBD_RULEEM000001_W04_sur", models[0].FolderName)
}

func TestFromStatic(t *testing.T) {
	models := FromStatic(config.SetGBDFMCR, config.Default().StaticModelsFor(config.SetGBDFMCR))
	require.Len(t, models, 1)
	assert.Equal(t, naming.CategoryCovidGBDFMCR, models[0].Category)
	assert.Equal(t, "TS_47_Covid_gbdf_mcr_RULEEM000001_v04_sur", models[0].FolderName)
	assert.Equal(t, "covid_gbdf_mcr_RULEEM000001_v04.json", models[0].CollectionFile)
}
