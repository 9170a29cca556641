package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArtifact = `{
  "version": 1,
  "features": 21,
  "labels": ["Web Developer", "Database Developer", "Technical Support"],
  "nodes": [
    {"feature": 1, "threshold": 5.5, "left": 1, "right": 2},
    {"label": "Technical Support"},
    {"feature": 15, "threshold": 7.0, "left": 3, "right": 4},
    {"label": "Database Developer"},
    {"label": "Web Developer"}
  ]
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndPredict(t *testing.T) {
	clf, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)
	assert.Equal(t, 21, clf.Features())

	vec := make([]float64, 21)

	vec[1] = 3 // low coding rating -> left leaf
	label, err := clf.Predict(vec)
	require.NoError(t, err)
	assert.Equal(t, "Technical Support", label)

	vec[1] = 9
	vec[15] = 4 // subject code below split
	label, err = clf.Predict(vec)
	require.NoError(t, err)
	assert.Equal(t, "Database Developer", label)

	vec[15] = 9
	label, err = clf.Predict(vec)
	require.NoError(t, err)
	assert.Equal(t, "Web Developer", label)
}

func TestPredictWrongVectorLength(t *testing.T) {
	clf, err := Load(writeArtifact(t, testArtifact))
	require.NoError(t, err)

	_, err = clf.Predict(make([]float64, 20))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 21")
}

func TestLoadMissingArtifact(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownLabel(t *testing.T) {
	bad := `{
  "version": 1,
  "features": 21,
  "labels": ["Underwater Basket Weaver"],
  "nodes": [{"label": "Underwater Basket Weaver"}]
}`
	_, err := Load(writeArtifact(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a known job role")
}

func TestLoadRejectsBadChildIndex(t *testing.T) {
	bad := `{
  "version": 1,
  "features": 21,
  "labels": ["Web Developer"],
  "nodes": [{"feature": 0, "threshold": 1, "left": 5, "right": 1}, {"label": "Web Developer"}]
}`
	_, err := Load(writeArtifact(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "child index out of range")
}

func TestPredictDetectsCycles(t *testing.T) {
	cyclic := `{
  "version": 1,
  "features": 21,
  "labels": ["Web Developer"],
  "nodes": [
    {"feature": 0, "threshold": 1, "left": 1, "right": 1},
    {"feature": 0, "threshold": 1, "left": 2, "right": 2},
    {"feature": 0, "threshold": 1, "left": 1, "right": 1}
  ]
}`
	clf, err := Load(writeArtifact(t, cyclic))
	require.NoError(t, err)

	_, err = clf.Predict(make([]float64, 21))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not terminate")
}
