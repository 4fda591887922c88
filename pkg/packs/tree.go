package packs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tree is an assembled file tree: relative posix path to content.
type Tree map[string][]byte

// collectFiles maps relative posix path to absolute path for all files under
// root, skipping hidden files and directories.
func collectFiles(root string) (map[string]string, error) {
	out := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, ".") || strings.Contains(rel, "/.") {
			return nil
		}
		out[rel] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssembleTree builds the effective file tree:
//   - start with the system pack files
//   - for each overlay (in order), replace files by name
//   - for *.json/*.yaml where both base and overlay decode to mappings,
//     apply the extended JSON merge patch instead of replacing
//
// Merged documents are re-serialized with yaml.v3, which emits map keys in
// sorted order, so identical inputs always produce identical bytes.
func AssembleTree(systemRoot string, overlays []string) (Tree, error) {
	baseFiles, err := collectFiles(systemRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan system pack %s: %w", systemRoot, err)
	}

	tree := make(Tree, len(baseFiles))
	for rel, abs := range baseFiles {
		b, err := os.ReadFile(abs)
		if err != nil {
			return nil, err
		}
		tree[rel] = b
	}

	for _, overlayRoot := range overlays {
		ovFiles, err := collectFiles(overlayRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overlay %s: %w", overlayRoot, err)
		}
		for _, rel := range sortedPathKeys(ovFiles) {
			b, err := os.ReadFile(ovFiles[rel])
			if err != nil {
				return nil, err
			}
			if isStructured(rel) {
				if existing, ok := tree[rel]; ok {
					merged, ok := tryMergeDocs(existing, b)
					if ok {
						tree[rel] = merged
						continue
					}
				}
			}
			tree[rel] = b
		}
	}
	return tree, nil
}

// tryMergeDocs merges overlay onto base when both decode to mappings.
// Any decode or merge failure falls back to byte replacement.
func tryMergeDocs(base, overlay []byte) ([]byte, bool) {
	var baseDoc, ovDoc any
	if err := yaml.Unmarshal(base, &baseDoc); err != nil {
		return nil, false
	}
	if err := yaml.Unmarshal(overlay, &ovDoc); err != nil {
		return nil, false
	}
	baseMap, ok := baseDoc.(map[string]any)
	if !ok {
		return nil, false
	}
	ovMap, ok := ovDoc.(map[string]any)
	if !ok {
		return nil, false
	}
	merged, err := Merge(baseMap, ovMap, DefaultMergeOptions())
	if err != nil {
		return nil, false
	}
	out, err := yaml.Marshal(merged)
	if err != nil {
		return nil, false
	}
	return out, true
}

func isStructured(rel string) bool {
	return strings.HasSuffix(rel, ".json") ||
		strings.HasSuffix(rel, ".yaml") ||
		strings.HasSuffix(rel, ".yml")
}

var semverRe = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)$`)

// semverKey orders version directory names: parsed x.y.z tuples sort above
// anything unparsable, which falls back to name order.
type semverKey struct {
	major, minor, patch int
	parsed              bool
	name                string
}

func parseSemverKey(name string) semverKey {
	m := semverRe.FindStringSubmatch(name)
	if m == nil {
		return semverKey{name: name}
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return semverKey{major: major, minor: minor, patch: patch, parsed: true, name: name}
}

func (k semverKey) less(other semverKey) bool {
	if k.parsed != other.parsed {
		return !k.parsed
	}
	if !k.parsed {
		return k.name < other.name
	}
	if k.major != other.major {
		return k.major < other.major
	}
	if k.minor != other.minor {
		return k.minor < other.minor
	}
	if k.patch != other.patch {
		return k.patch < other.patch
	}
	return k.name < other.name
}

// FindSystemPack locates a system pack under
// <root>/resources/<component>/system-pack. With an explicit version the
// exact directory is required; otherwise the latest semver directory wins.
func FindSystemPack(root, component, version string) (*PackRef, error) {
	base := filepath.Join(root, "resources", component, "system-pack")

	if version != "" {
		packDir := filepath.Join(base, version)
		if _, err := os.Stat(packDir); err != nil {
			return nil, fmt.Errorf("%w: %s@%s at %s", ErrPackNotFound, component, version, packDir)
		}
		return LoadPack(packDir)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("%w: no system-pack root at %s", ErrPackNotFound, base)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no versions under %s", ErrPackNotFound, base)
	}
	sort.Slice(names, func(i, j int) bool {
		return parseSemverKey(names[i]).less(parseSemverKey(names[j]))
	})
	return LoadPack(filepath.Join(base, names[len(names)-1]))
}

// AssembleEffectiveTree builds the effective tree for a component:
// the latest (or pinned) system pack overlaid, in order, with the client's
// common overlays, env overlays, and profile overlays. Later wins.
func AssembleEffectiveTree(root, component, client, env, profile, version string) (Tree, *PackRef, error) {
	pack, err := FindSystemPack(root, component, version)
	if err != nil {
		return nil, nil, err
	}

	var overlays []string
	if client != "" {
		commonOv := filepath.Join(root, "client-configs", client, "common", component, "overlays")
		if dirExists(commonOv) {
			overlays = append(overlays, commonOv)
		}
		if env != "" {
			envOv := filepath.Join(root, "client-configs", client, env, component, "overlays")
			if dirExists(envOv) {
				overlays = append(overlays, envOv)
			}
		}
		if profile != "" {
			envDir := env
			if envDir == "" {
				envDir = "common"
			}
			profOv := filepath.Join(root, "client-configs", client, envDir, component, "overlays", "profiles", profile)
			if dirExists(profOv) {
				overlays = append(overlays, profOv)
			}
		}
	}

	tree, err := AssembleTree(pack.Root, overlays)
	if err != nil {
		return nil, nil, err
	}
	return tree, pack, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// TreeHash computes a content hash over the tree: sorted relative paths and
// their bytes.
func TreeHash(tree Tree) string {
	hasher := sha256.New()
	for _, rel := range sortedTreeKeys(tree) {
		hasher.Write([]byte(rel))
		hasher.Write(tree[rel])
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// DirHash computes a content hash for a directory: sorted relative file
// paths and their bytes.
func DirHash(root string) (string, error) {
	files, err := collectFiles(root)
	if err != nil {
		return "", err
	}
	hasher := sha256.New()
	for _, rel := range sortedPathKeys(files) {
		b, err := os.ReadFile(files[rel])
		if err != nil {
			return "", err
		}
		hasher.Write([]byte(rel))
		hasher.Write(b)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// LoadYAML decodes a YAML document from the tree; a missing path yields an
// empty mapping.
func LoadYAML(tree Tree, rel string) (map[string]any, error) {
	raw, ok := tree[rel]
	if !ok {
		return map[string]any{}, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", rel, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func sortedPathKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTreeKeys(t Tree) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
