package docusaurus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFeatures_Lenient(t *testing.T) {
	got := ParseFeatures(map[string]bool{"Docs": true, " blog ": false, "wiki": true})

	require.Equal(t, Features{FeatureDocs: true, FeatureBlog: false}, got)
	require.True(t, got.Enabled(FeatureDocs))
	require.False(t, got.Enabled(FeatureBlog))
	require.False(t, got.Enabled(Feature("wiki")))
}

func TestParseFeatures_CaseVariantsDisableWins(t *testing.T) {
	raw := map[string]bool{"docs": true, "Docs": false, "BLOG": true, "blog": true}
	for range 50 {
		require.Equal(t, Features{FeatureDocs: false, FeatureBlog: true}, ParseFeatures(raw))
	}
}

func TestFeatureKey(t *testing.T) {
	require.Equal(t, "docs", FeatureKey(" Docs "))
	require.Equal(t, "blog", FeatureKey("BLOG"))
	require.Equal(t, "wiki", FeatureKey("Wiki"))
}

func TestDetectFeatures(t *testing.T) {
	got, err := DetectFeatures(testBase, existsIn("docs"))
	require.NoError(t, err)
	require.Equal(t, Features{FeatureDocs: true, FeatureBlog: false}, got)
}

func TestDetectFeatures_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := DetectFeatures(testBase, func(string) (bool, error) { return false, boom })
	require.ErrorIs(t, err, boom)
}

func TestFeatures_Merge(t *testing.T) {
	detected := Features{FeatureDocs: true, FeatureBlog: false}
	merged := detected.Merge(Features{FeatureBlog: true})

	require.Equal(t, Features{FeatureDocs: true, FeatureBlog: true}, merged)
	require.Equal(t, Features{FeatureDocs: true, FeatureBlog: false}, detected, "merge does not mutate the receiver")

	require.Equal(t, Features{FeatureDocs: false, FeatureBlog: false}, detected.Merge(Features{FeatureDocs: false}))
}

func TestFeatures_String(t *testing.T) {
	require.Equal(t, "docs,blog", Features{FeatureBlog: true, FeatureDocs: true}.String())
	require.Equal(t, "blog", Features{FeatureBlog: true}.String())
	require.Equal(t, "", Features(nil).String())
}
