package packs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAssembleTreeReplacesByName(t *testing.T) {
	system := t.TempDir()
	overlay := t.TempDir()

	writeFile(t, system, "slots/wh_sql.tmpl", "base template")
	writeFile(t, system, "slots/other.tmpl", "untouched")
	writeFile(t, overlay, "slots/wh_sql.tmpl", "overlay template")

	tree, err := AssembleTree(system, []string{overlay})
	require.NoError(t, err)

	assert.Equal(t, "overlay template", string(tree["slots/wh_sql.tmpl"]))
	assert.Equal(t, "untouched", string(tree["slots/other.tmpl"]))
}

func TestAssembleTreeMergesMappings(t *testing.T) {
	system := t.TempDir()
	overlay := t.TempDir()

	writeFile(t, system, "slots/wh_sql.defaults.yaml", "a: 1\nb: 2\n")
	writeFile(t, overlay, "slots/wh_sql.defaults.yaml", "b: 20\nc: 3\n")

	tree, err := AssembleTree(system, []string{overlay})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(tree["slots/wh_sql.defaults.yaml"], &doc))
	assert.Equal(t, map[string]any{"a": 1, "b": 20, "c": 3}, doc)
}

func TestAssembleTreeNonMappingYAMLReplaced(t *testing.T) {
	system := t.TempDir()
	overlay := t.TempDir()

	writeFile(t, system, "data/list.yaml", "- 1\n- 2\n")
	writeFile(t, overlay, "data/list.yaml", "- 3\n")

	tree, err := AssembleTree(system, []string{overlay})
	require.NoError(t, err)

	assert.Equal(t, "- 3\n", string(tree["data/list.yaml"]))
}

func TestAssembleTreeSkipsHiddenFiles(t *testing.T) {
	system := t.TempDir()

	writeFile(t, system, ".git/config", "nope")
	writeFile(t, system, "slots/.hidden", "nope")
	writeFile(t, system, "slots/visible.tmpl", "yes")

	tree, err := AssembleTree(system, nil)
	require.NoError(t, err)

	assert.Len(t, tree, 1)
	assert.Contains(t, tree, "slots/visible.tmpl")
}

// Identical inputs must produce byte-identical trees, and therefore stable
// hashes, across runs.
func TestTreeHashDeterministic(t *testing.T) {
	system := t.TempDir()
	overlay := t.TempDir()

	writeFile(t, system, "slots/a.defaults.yaml", "z: 1\na: 2\nm:\n  q: 3\n")
	writeFile(t, overlay, "slots/a.defaults.yaml", "a: 20\nk: [1, 2]\n")
	writeFile(t, system, "slots/a.tmpl", "hello")

	tree1, err := AssembleTree(system, []string{overlay})
	require.NoError(t, err)
	tree2, err := AssembleTree(system, []string{overlay})
	require.NoError(t, err)

	assert.Equal(t, TreeHash(tree1), TreeHash(tree2))
	assert.Equal(t, tree1["slots/a.defaults.yaml"], tree2["slots/a.defaults.yaml"])
}

func TestFindSystemPackLatestSemver(t *testing.T) {
	root := t.TempDir()
	base := "resources/fm_app/system-pack"

	for _, v := range []string{"1.2.0", "1.10.0", "0.9.9"} {
		writeFile(t, root, base+"/"+v+"/manifest.yaml", "version: \""+v+"\"\n")
	}

	pack, err := FindSystemPack(root, "fm_app", "")
	require.NoError(t, err)
	assert.Equal(t, "1.10.0", pack.Version)
}

func TestFindSystemPackExplicitVersion(t *testing.T) {
	root := t.TempDir()
	base := "resources/fm_app/system-pack"
	writeFile(t, root, base+"/1.0.0/manifest.yaml", "version: \"1.0.0\"\n")
	writeFile(t, root, base+"/2.0.0/manifest.yaml", "version: \"2.0.0\"\n")

	pack, err := FindSystemPack(root, "fm_app", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", pack.Version)

	_, err = FindSystemPack(root, "fm_app", "3.0.0")
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestLoadPackValidatesManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.yaml", "pack_name: test\n")

	_, err := LoadPack(dir)
	var verr *PackValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoadPackRejectsUnknownComponent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.yaml", "version: \"1.0.0\"\ntarget_component: nope\n")

	_, err := LoadPack(dir)
	var verr *PackValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAssembleEffectiveTreeOverlayOrder(t *testing.T) {
	root := t.TempDir()
	packDir := "resources/fm_app/system-pack/1.0.0"
	writeFile(t, root, packDir+"/manifest.yaml", "version: \"1.0.0\"\n")
	writeFile(t, root, packDir+"/slots/s.tmpl", "system")
	writeFile(t, root, "client-configs/acme/common/fm_app/overlays/slots/s.tmpl", "common")
	writeFile(t, root, "client-configs/acme/prod/fm_app/overlays/slots/s.tmpl", "prod")

	tree, pack, err := AssembleEffectiveTree(root, "fm_app", "acme", "prod", "", "")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", pack.Version)
	// env overlay wins over common
	assert.Equal(t, "prod", string(tree["slots/s.tmpl"]))
}
