package docusaurus

import (
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// Feature names an optional content section of the site.
type Feature string

const (
	FeatureDocs Feature = "docs"
	FeatureBlog Feature = "blog"
)

// AllFeatures lists the recognised features in navbar order.
var AllFeatures = []Feature{FeatureDocs, FeatureBlog}

var featureNames = foundation.NewNormalizer(map[string]Feature{
	string(FeatureDocs): FeatureDocs,
	string(FeatureBlog): FeatureBlog,
})

// Features maps a feature to its enablement. Absent features are disabled.
type Features map[Feature]bool

// Enabled reports whether f is switched on.
func (fs Features) Enabled(f Feature) bool {
	return fs[f]
}

// Merge returns a copy of fs with every key set in override taking precedence.
func (fs Features) Merge(override Features) Features {
	out := make(Features, len(AllFeatures))
	for k, v := range fs {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// String lists the enabled features, e.g. "docs,blog".
func (fs Features) String() string {
	enabled := lo.Filter(AllFeatures, func(f Feature, _ int) bool { return fs.Enabled(f) })
	return strings.Join(lo.Map(enabled, func(f Feature, _ int) string { return string(f) }), ",")
}

// FeatureKey returns the canonical name of a feature flag. Names that are
// not features are returned trimmed and lower-cased.
func FeatureKey(name string) string {
	if f, ok := featureNames.Lookup(name); ok {
		return string(f)
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseFeatures converts raw flag names into Features. Names are matched
// case-insensitively; unknown names are ignored. When several names select
// the same feature and disagree, the feature is disabled.
func ParseFeatures(raw map[string]bool) Features {
	out := make(Features, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		f, ok := featureNames.Lookup(name)
		if !ok {
			slog.Debug("Ignoring unknown feature flag", logfields.Feature(name))
			continue
		}
		enabled := raw[name]
		if prev, seen := out[f]; seen {
			enabled = prev && enabled
		}
		out[f] = enabled
	}
	return out
}

// DetectFeatures enables each feature whose folder (docs/, blog/) exists
// under root.
func DetectFeatures(root string, exists ExistsFunc) (Features, error) {
	out := make(Features, len(AllFeatures))
	for _, f := range AllFeatures {
		ok, err := exists(filepath.Join(root, string(f)))
		if err != nil {
			return nil, err
		}
		out[f] = ok
	}
	return out, nil
}
