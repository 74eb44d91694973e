// Public domain.

package psprog

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/soniakeys/protosep/protostar"
)

const (
	perseus  = "../../protostar/testdata/perseus.csv"
	orion    = "../../protostar/testdata/orion.csv"
	badname  = "../../protostar/testdata/badname.csv"
	cfgPath  = "/cfg/proto_sep/proto_sep_config.yml"
	quietCfg = "logging:\n  on: true\n  level: ERROR\n"
)

func run(t *testing.T, fs afero.Fs, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCommand(fs, &out, &errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSummaryJSON(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(),
		"summary", "--format", "json", "--bootstrap", "200", perseus, orion)
	require.NoError(t, err)

	var r summaryReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Regions, 2)
	assert.Equal(t, regionReport{Name: "Per", Path: perseus, Groups: 2, Protostars: 5}, r.Regions[0])
	assert.Equal(t, regionReport{Name: "Ori", Path: orion, Groups: 2, Protostars: 4}, r.Regions[1])

	byName := map[string]fieldReport{}
	for _, f := range r.Fields {
		byName[f.Field] = f
	}
	id := byName["inclination_difference"]
	assert.Equal(t, "group", id.Level)
	assert.Equal(t, 5, id.N)
	require.NotNil(t, id.Mean)
	assert.InDelta(t, 13.2, *id.Mean, 1e-12)
	assert.InDelta(t, 5, *id.Min, 0)
	assert.InDelta(t, 30, *id.Max, 0)
	assert.Equal(t, 9, byName["all_tbol"].N)
	assert.Equal(t, "protostar", byName["all_tbol"].Level)

	m := r.SeparationMedian
	assert.Equal(t, .68, m.Level)
	assert.Equal(t, 200, m.Resamples)
	require.NotNil(t, m.Lo)
	require.NotNil(t, m.Hi)
	assert.LessOrEqual(t, *m.Lo, *m.Hi)
}

func TestSummaryYAML(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(),
		"summary", "-f", "yaml", "--bootstrap", "50", perseus)
	require.NoError(t, err)
	var r summaryReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Len(t, r.Regions, 1)
	assert.Equal(t, "Per", r.Regions[0].Name)
	assert.Len(t, r.Fields, len(views()))
}

func TestSummaryText(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(), "summary", "--bootstrap", "50", perseus, orion)
	require.NoError(t, err)
	for _, s := range []string{"Per", "Ori", "separation", "inclination_difference_error",
		"all_rmaj", "Median separation 68% interval (50 resamples)"} {
		assert.Contains(t, out, s)
	}
}

func TestSummaryBadFormat(t *testing.T) {
	_, _, err := run(t, afero.NewMemMapFs(), "summary", "-f", "xml", perseus)
	assert.ErrorContains(t, err, "unknown format")
}

func TestSummaryBadLevel(t *testing.T) {
	for _, level := range []string{"1.5", "-2", "0", "1"} {
		_, _, err := run(t, afero.NewMemMapFs(), "summary", "--level="+level, perseus)
		assert.ErrorContains(t, err, "not between 0 and 1", "level %s", level)
	}
	_, _, err := run(t, afero.NewMemMapFs(), "summary", "--bootstrap", "0", perseus)
	assert.ErrorContains(t, err, "bootstrap resamples")
}

func TestNaNEncodesNull(t *testing.T) {
	r := summaryReport{Fields: []fieldReport{{Field: "separation", Mean: num(math.NaN())}}}
	var b bytes.Buffer
	require.NoError(t, writeSummary(&b, r, "json"))
	assert.Contains(t, b.String(), `"mean": null`)
}

func TestWarningsLogged(t *testing.T) {
	_, stderr, err := run(t, afero.NewMemMapFs(), "values", "separation", perseus)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Per must have contained NaNs")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, cfgPath, []byte(quietCfg), 0o644))
	_, stderr, err = run(t, fs, "values", "separation", perseus)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	fs = afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, cfgPath,
		[]byte("logging:\n  on: false\n  level: DEBUG\n"), 0o644))
	_, stderr, err = run(t, fs, "values", "separation", perseus)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, _, err := run(t, fs, "values", "inclination_difference", perseus, orion)
	require.NoError(t, err)
	assert.Equal(t, "20\n30\n5\n6\n5\n", out)

	out, _, err = run(t, fs, "values", "all_rmaj", orion)
	require.NoError(t, err)
	assert.Equal(t, "20\n25\n30\n35\n", out)

	out, _, err = run(t, fs, "--reference", "1", "values", "inclination_difference", perseus)
	require.NoError(t, err)
	assert.Equal(t, "20\n50\n5\n", out)

	_, _, err = run(t, fs, "values", "nope", perseus)
	assert.ErrorContains(t, err, `unknown field "nope"`)
	// protostar fields need the prefix, group fields must not have it
	_, _, err = run(t, fs, "values", "tbol", perseus)
	assert.ErrorContains(t, err, `unknown field "tbol"`)
	_, _, err = run(t, fs, "values", "all_separation", perseus)
	assert.ErrorContains(t, err, `unknown field "all_separation"`)

	_, _, err = run(t, fs, "values", "separation", perseus, badname)
	assert.ErrorContains(t, err, "malformed row name")
}

func TestLookupView(t *testing.T) {
	for _, v := range views() {
		got, err := lookupView(v.name)
		require.NoError(t, err)
		assert.Equal(t, v.name, got.name)
		assert.Equal(t, v.level, got.level)
	}
}

func TestFields(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(), "fields")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(views()))
	assert.True(t, strings.HasPrefix(lines[0], "separation"))
	assert.Contains(t, out, "all_tbol")
}

func TestList(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(), "list", perseus)
	require.NoError(t, err)
	assert.Contains(t, out, "Region Per")
	assert.Contains(t, out, "Field 1, 3 members")
	assert.Contains(t, out, "Field 3, 2 members")
	assert.NotContains(t, out, "Per_2_1")
	assert.Equal(t, 2, strings.Count(out, "\n   * "), "one reference per group")
	assert.Equal(t, 3, strings.Count(out, " sep "))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestListWriteError(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	c, err := protostar.CatalogFromFiles(&protostar.Options{Log: log}, perseus)
	require.NoError(t, err)
	assert.EqualError(t, writeList(failWriter{}, c), "disk full")
}

func TestConfigCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, _, err := run(t, fs, "config")
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)
	assert.Contains(t, out, "logging")
	assert.Contains(t, out, "WARNING")
	exists, err := afero.Exists(fs, cfgPath)
	require.NoError(t, err)
	assert.True(t, exists, "defaults written on first use")
}

func TestBadSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, cfgPath, []byte("logging:\n  level: LOUD\n"), 0o644))
	_, _, err := run(t, fs, "fields")
	assert.ErrorContains(t, err, "unknown logging level")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, afero.NewMemMapFs(), "--version")
	require.NoError(t, err)
	assert.Equal(t, versionString+"\n"+copyrightString+"\n", out)
}
