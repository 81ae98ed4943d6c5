package collection

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtended(t *testing.T) {
	fs := memfs.New()
	doc := `{"info":{"name":"c","schema":"s"},"item":[{"name":"r1"},{"name":"r2"}],"variable":[]}`
	require.NoError(t, util.WriteFile(fs, "col.json", []byte(doc), 0o644))

	v := Validate(fs, "col.json")
	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)
	assert.Empty(t, v.Warnings)
	assert.Equal(t, 2, v.Requests)
}

func TestValidateMinimal(t *testing.T) {
	fs := memfs.New()
	doc := `{"version":"1","name":"c","type":"collection","items":[{"uid":"x"}]}`
	require.NoError(t, util.WriteFile(fs, "col.json", []byte(doc), 0o644))

	v := Validate(fs, "col.json")
	assert.True(t, v.Valid)
	assert.Equal(t, 1, v.Requests)
}

func TestValidateMinimalMissingFields(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "col.json", []byte(`{"name":"c"}`), 0o644))

	v := Validate(fs, "col.json")
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "missing required field: version")
	assert.Contains(t, v.Errors, "missing required field: type")
	assert.Contains(t, v.Errors, "missing required field: items")
}

func TestValidateEmptyCollectionWarns(t *testing.T) {
	fs := memfs.New()
	doc := `{"info":{"name":"c"},"item":[]}`
	require.NoError(t, util.WriteFile(fs, "col.json", []byte(doc), 0o644))

	v := Validate(fs, "col.json")
	assert.True(t, v.Valid)
	assert.Equal(t, []string{"collection contains no requests"}, v.Warnings)
}

func TestValidateBadInput(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "col.json", []byte(`{broken`), 0o644))
	v := Validate(fs, "col.json")
	assert.False(t, v.Valid)
	require.Len(t, v.Errors, 1)

	require.NoError(t, util.WriteFile(fs, "arr.json", []byte(`[1,2]`), 0o644))
	v = Validate(fs, "arr.json")
	assert.False(t, v.Valid)

	v = Validate(fs, "absent.json")
	assert.False(t, v.Valid)
}

func TestStats(t *testing.T) {
	fs := memfs.New()
	dir := "renaming_jsons/WGS_CSBD/TS_23_Covid_cvd001_00C01_dis/regression"
	for name, body := range map[string]string{
		"TC#01_11111#cvd001#00C01#LR.json": `{}`,
		"TC#02_22222#cvd001#00C01#LR.json": `{}`,
		"TC#03_33333#cvd001#00C02#NR.json": `{}`,
		"TC#04_44444#deny.json":            `{}`, // not canonical, counted as a file only
	} {
		require.NoError(t, util.WriteFile(fs, dir+"/"+name, []byte(body), 0o644))
	}

	st, err := Stats(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, 4, st.TotalFiles)
	assert.Equal(t, map[string]int{"LR": 2, "NR": 1}, st.SuffixCounts)
	assert.Equal(t, []string{"cvd001"}, st.EditIDs)
	assert.Equal(t, []string{"00C01", "00C02"}, st.ResponseCodes)
	assert.Equal(t, []string{"LR", "NR"}, st.Suffixes)
}

func TestStatsMissingDir(t *testing.T) {
	_, err := Stats(memfs.New(), "absent")
	require.Error(t, err)
}

func TestListDirs(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("root/b_dir", 0o755))
	require.NoError(t, fs.MkdirAll("root/a_dir", 0o755))
	require.NoError(t, util.WriteFile(fs, "root/loose.json", []byte(`{}`), 0o644))

	dirs, err := ListDirs(fs, "root")
	require.NoError(t, err)
	assert.Equal(t, []string{"a_dir", "b_dir"}, dirs)
}
