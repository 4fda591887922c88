package packs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustYAML(t *testing.T, doc string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &out))
	return out
}

func TestMergePlainPatch(t *testing.T) {
	base := mustYAML(t, `
a: 1
b:
  c: 2
  d: 3
`)
	patch := mustYAML(t, `
b:
  c: 20
e: 5
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": 1,
		"b": map[string]any{"c": 20, "d": 3},
		"e": 5,
	}, result)
}

func TestMergeNullDeletes(t *testing.T) {
	base := mustYAML(t, `
a: 1
b:
  c: 2
`)
	patch := mustYAML(t, `
b: null
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": 1}, result)
}

func TestMergeNestedNullDeletes(t *testing.T) {
	base := mustYAML(t, `
a:
  b: 1
  c: 2
`)
	patch := mustYAML(t, `
a:
  b: null
  d: 4
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": map[string]any{"c": 2, "d": 4},
	}, result)
}

func TestMergeNonMappingReplaces(t *testing.T) {
	base := mustYAML(t, `
a:
  b: 1
`)
	patch := mustYAML(t, `
a: scalar
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": "scalar"}, result)
}

func TestMergeListsAppendByDefault(t *testing.T) {
	base := mustYAML(t, `
items: [1, 2]
`)
	patch := mustYAML(t, `
items: [3, 4]
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"items": []any{1, 2, 3, 4}}, result)
}

func TestMergeListsUnique(t *testing.T) {
	base := mustYAML(t, `
items: [1, 2, 3]
`)
	patch := mustYAML(t, `
strategy: unique
items: [2, 3, 4]
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	merged := result.(map[string]any)
	assert.Equal(t, []any{1, 2, 3, 4}, merged["items"])
	assert.NotContains(t, merged, "strategy")
}

func TestMergeListsOverride(t *testing.T) {
	base := mustYAML(t, `
items: [1, 2, 3]
`)
	patch := mustYAML(t, `
strategies:
  items: override
items: [9]
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, []any{9}, result.(map[string]any)["items"])
}

// Strategy maps declared at the top of an overlay apply to matching keys at
// any depth, so tenant overlays can steer deeply nested example lists.
func TestMergeByIDDeepStrategyMap(t *testing.T) {
	base := mustYAML(t, `
profiles:
  wh:
    examples:
      - {id: "a", q: "1"}
      - {id: "b", q: "2"}
`)
	patch := mustYAML(t, `
strategies:
  examples: by_id
id_keys:
  examples: id
profiles:
  wh:
    examples:
      - {id: "b", q: "2.1"}
      - {id: "c", q: "3"}
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	examples := result.(map[string]any)["profiles"].(map[string]any)["wh"].(map[string]any)["examples"]
	assert.Equal(t, []any{
		map[string]any{"id": "a", "q": "1"},
		map[string]any{"id": "b", "q": "2.1"},
		map[string]any{"id": "c", "q": "3"},
	}, examples)
}

// by_id ordering: base survivors keep base order, new patch ids follow in
// patch order, and ids are unique in the result.
func TestMergeByIDOrdering(t *testing.T) {
	base := []any{
		map[string]any{"id": "x", "v": 1},
		map[string]any{"id": "y", "v": 2},
		map[string]any{"id": "z", "v": 3},
	}
	patch := []any{
		map[string]any{"id": "z", "v": 30},
		map[string]any{"id": "w", "v": 4},
		map[string]any{"id": "x", "v": 10},
	}

	result, err := mergeLists(base, patch, StrategyByID, "id")
	require.NoError(t, err)

	var ids []string
	for _, item := range result {
		ids = append(ids, item.(map[string]any)["id"].(string))
	}
	assert.Equal(t, []string{"x", "y", "z", "w"}, ids)
	assert.Equal(t, 10, result[0].(map[string]any)["v"])
	assert.Equal(t, 30, result[2].(map[string]any)["v"])
}

func TestMergeByIDDropsKeylessBaseItems(t *testing.T) {
	base := []any{"loose", map[string]any{"id": "a", "v": 1}}
	patch := []any{map[string]any{"id": "b", "v": 2}}

	result, err := mergeLists(base, patch, StrategyByID, "id")
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, "a", result[0].(map[string]any)["id"])
	assert.Equal(t, "b", result[1].(map[string]any)["id"])
}

func TestMergeByIDRequiresIDKey(t *testing.T) {
	patch := mustYAML(t, `
strategies:
  items: by_id
items:
  - {id: "a"}
`)
	base := mustYAML(t, `
items:
  - {id: "b"}
`)

	_, err := Merge(base, patch, DefaultMergeOptions())
	assert.ErrorIs(t, err, ErrMissingIDKey)
}

func TestMergeUnknownStrategy(t *testing.T) {
	base := mustYAML(t, `
items: [1]
`)
	patch := mustYAML(t, `
strategy: zipper
items: [2]
`)

	_, err := Merge(base, patch, DefaultMergeOptions())
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestMergeWrappedList(t *testing.T) {
	base := mustYAML(t, `
items:
  - {id: "a", v: 1}
`)
	patch := mustYAML(t, `
items:
  strategy: by_id
  id_key: id
  __list__:
    - {id: "a", v: 10}
    - {id: "b", v: 2}
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	items := result.(map[string]any)["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, 10, items[0].(map[string]any)["v"])
	assert.Equal(t, "b", items[1].(map[string]any)["id"])
}

func TestMergeMetaKeysNeverMaterialized(t *testing.T) {
	base := mustYAML(t, `
a: 1
`)
	patch := mustYAML(t, `
strategy: append
id_key: id
strategies: {}
id_keys: {}
b: 2
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	merged := result.(map[string]any)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, merged)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := mustYAML(t, `
a:
  items: [1]
`)
	patch := mustYAML(t, `
a:
  items: [2]
`)

	result, err := Merge(base, patch, DefaultMergeOptions())
	require.NoError(t, err)

	// mutate the result; inputs must be unaffected
	result.(map[string]any)["a"].(map[string]any)["items"].([]any)[0] = 99
	assert.Equal(t, 1, base["a"].(map[string]any)["items"].([]any)[0])
	assert.Equal(t, 2, patch["a"].(map[string]any)["items"].([]any)[0])
}
