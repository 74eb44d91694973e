// Public domain.

package protostar_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniakeys/protosep/internal/table"
	"github.com/soniakeys/protosep/protostar"
)

func quietOptions() *protostar.Options {
	log, _ := logtest.NewNullLogger()
	return &protostar.Options{Log: log}
}

func TestCatalogFromFiles(t *testing.T) {
	opt := quietOptions()
	c, err := protostar.CatalogFromFiles(opt,
		"testdata/perseus.csv", "testdata/orion.csv")
	require.NoError(t, err)
	rs := c.Regions()
	require.Len(t, rs, 2)
	assert.Equal(t, "Per", rs[0].Name())
	assert.Equal(t, "Ori", rs[1].Name())

	per, err := protostar.RegionFromFile("testdata/perseus.csv", opt)
	require.NoError(t, err)
	ori, err := protostar.RegionFromFile("testdata/orion.csv", opt)
	require.NoError(t, err)

	// every group view is the concatenation of the region views in file order
	for _, f := range protostar.GroupFields {
		want := append(per.GroupValues(f), ori.GroupValues(f)...)
		if d := cmp.Diff(want, c.GroupValues(f)); d != "" {
			t.Errorf("%s (-want +got):\n%s", f.Name, d)
		}
	}
	for _, f := range protostar.ProtostarFields {
		want := append(per.ProtostarValues(f), ori.ProtostarValues(f)...)
		if d := cmp.Diff(want, c.ProtostarValues(f)); d != "" {
			t.Errorf("%s (-want +got):\n%s", f.Name, d)
		}
	}

	assert.Equal(t, c.GroupValues(protostar.GroupSeparation), c.Separation())
	if d := cmp.Diff([]float64{20, 30, 5, 6, 5}, c.InclinationDifference(), approx); d != "" {
		t.Errorf("InclinationDifference (-want +got):\n%s", d)
	}
	assert.Len(t, c.InclinationDifferenceError(), 5)
	assert.Equal(t, []float64{100, 150, 45, 25, 35}, c.Rmaj())
	assert.Equal(t, []float64{100, 80, 150, 40, 45, 20, 25, 30, 35}, c.AllRmaj())
	assert.Equal(t, []float64{50, 70, 300, 1000, 900, 400, 420, 60, 65}, c.AllTbol())

	// views are recomputed and safe to repeat
	assert.Equal(t, c.AllTbol(), c.AllTbol())
	v := c.Rmaj()
	v[0] = -1
	assert.Equal(t, 100., c.Rmaj()[0])
}

func TestCatalogFileOrder(t *testing.T) {
	opt := quietOptions()
	a, err := protostar.CatalogFromFiles(opt, "testdata/orion.csv", "testdata/perseus.csv")
	require.NoError(t, err)
	b, err := protostar.CatalogFromFiles(opt, "testdata/perseus.csv", "testdata/orion.csv")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 5, 20, 30, 5}, a.InclinationDifference())
	assert.NotEqual(t, a.InclinationDifference(), b.InclinationDifference())
}

func TestCatalogAllOrNothing(t *testing.T) {
	c, err := protostar.CatalogFromFiles(quietOptions(),
		"testdata/perseus.csv", "testdata/badname.csv", "testdata/orion.csv")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, table.ErrName)
}

func TestCatalogEmpty(t *testing.T) {
	c, err := protostar.CatalogFromFiles(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Regions())
	assert.Empty(t, c.Separation())
	assert.Empty(t, c.AllRmaj())

	c = protostar.NewCatalog(&protostar.Region{})
	assert.Len(t, c.Regions(), 1)
	assert.Empty(t, c.InclinationDifference())
	assert.Empty(t, c.AllTbol())
}

func TestLookupField(t *testing.T) {
	for _, f := range protostar.GroupFields {
		g, ok := protostar.LookupGroupField(f.Name)
		assert.True(t, ok, f.Name)
		assert.Equal(t, f.Name, g.Name)
	}
	for _, f := range protostar.ProtostarFields {
		p, ok := protostar.LookupProtostarField(f.Name)
		assert.True(t, ok, f.Name)
		assert.Equal(t, f.Name, p.Name)
	}
	_, ok := protostar.LookupGroupField("tbol")
	assert.False(t, ok)
	_, ok = protostar.LookupProtostarField("separation")
	assert.False(t, ok)
}

func ExampleCatalogFromFiles() {
	c, err := protostar.CatalogFromFiles(quietOptions(),
		"testdata/perseus.csv", "testdata/orion.csv")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range c.Regions() {
		fmt.Println(r.Name(), len(r.Groups()), "groups")
	}
	fmt.Println("inclination differences:", c.InclinationDifference())
	fmt.Println("tbol:", c.AllTbol())
	// Output:
	// Per 2 groups
	// Ori 2 groups
	// inclination differences: [20 30 5 6 5]
	// tbol: [50 70 300 1000 900 400 420 60 65]
}
