// Package packs implements prompt pack loading: the extended JSON-merge-patch
// used by overlays, effective tree assembly, and manifest validation.
package packs

import (
	"fmt"
	"reflect"
	"sort"
)

// ListStrategy selects how two lists merge.
type ListStrategy string

const (
	StrategyAppend   ListStrategy = "append"
	StrategyUnique   ListStrategy = "unique"
	StrategyByID     ListStrategy = "by_id"
	StrategyOverride ListStrategy = "override"
)

// MergeOptions carries the top-level list merge defaults.
type MergeOptions struct {
	ListStrategy ListStrategy
	ListIDKey    string
}

// DefaultMergeOptions is the top-level default: plain append.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{ListStrategy: StrategyAppend}
}

// Meta keys steer the merge and are never materialized in output.
var metaKeys = map[string]bool{
	"strategy":   true,
	"id_key":     true,
	"strategies": true,
	"id_keys":    true,
	"__list__":   true,
}

// overlaySpec is the typed form of the merge meta keys, carried down the
// descent. Defaults come from "strategy"/"id_key"; the per-key maps come from
// "strategies"/"id_keys" and are matched against child key names at any depth,
// with deeper declarations shadowing inherited ones.
type overlaySpec struct {
	strategy   ListStrategy
	idKey      string
	strategies map[string]ListStrategy
	idKeys     map[string]string
}

// refine folds the meta keys of a patch mapping into the inherited spec.
func (s overlaySpec) refine(patch map[string]any) overlaySpec {
	out := s
	if v, ok := patch["strategy"].(string); ok {
		out.strategy = ListStrategy(v)
	}
	if v, ok := patch["id_key"].(string); ok {
		out.idKey = v
	}
	if raw, ok := patch["strategies"].(map[string]any); ok && len(raw) > 0 {
		merged := make(map[string]ListStrategy, len(s.strategies)+len(raw))
		for k, v := range s.strategies {
			merged[k] = v
		}
		for k, v := range raw {
			if sv, ok := v.(string); ok {
				merged[k] = ListStrategy(sv)
			}
		}
		out.strategies = merged
	}
	if raw, ok := patch["id_keys"].(map[string]any); ok && len(raw) > 0 {
		merged := make(map[string]string, len(s.idKeys)+len(raw))
		for k, v := range s.idKeys {
			merged[k] = v
		}
		for k, v := range raw {
			if sv, ok := v.(string); ok {
				merged[k] = sv
			}
		}
		out.idKeys = merged
	}
	return out
}

// forChild resolves the effective strategy and id key for the named child:
// per-key override first, then the local/inherited default.
func (s overlaySpec) forChild(key string) (ListStrategy, string) {
	strategy := s.strategy
	if v, ok := s.strategies[key]; ok {
		strategy = v
	}
	idKey := s.idKey
	if v, ok := s.idKeys[key]; ok {
		idKey = v
	}
	return strategy, idKey
}

// child produces the spec inherited by the named child's subtree.
func (s overlaySpec) child(key string) overlaySpec {
	strategy, idKey := s.forChild(key)
	return overlaySpec{
		strategy:   strategy,
		idKey:      idKey,
		strategies: s.strategies,
		idKeys:     s.idKeys,
	}
}

// Merge applies patch onto base using the extended JSON-merge-patch rules:
//
//   - mapping vs mapping: RFC 7386 (null deletes), plus the meta keys above.
//   - list vs list: merged with the effective strategy.
//   - list vs mapping carrying "__list__": the wrapped list merges onto base
//     with the wrapper's strategy/id_key.
//   - anything else: patch replaces base.
//
// Inputs are YAML-decoded values (map[string]any, []any, scalars) and are
// never mutated; the result shares no structure with either argument.
func Merge(base, patch any, opts MergeOptions) (any, error) {
	return merge(base, patch, overlaySpec{
		strategy: opts.ListStrategy,
		idKey:    opts.ListIDKey,
	})
}

func merge(base, patch any, spec overlaySpec) (any, error) {
	if patchMap, ok := patch.(map[string]any); ok {
		if baseMap, ok := base.(map[string]any); ok {
			return mergeMaps(baseMap, patchMap, spec)
		}
		if baseList, ok := base.([]any); ok && isListWrapper(patchMap) {
			return mergeWrappedList(baseList, patchMap, spec)
		}
		// Non-mapping base: the patch mapping still goes through a merge with
		// an empty base so nested deletes and meta keys behave uniformly.
		return mergeMaps(map[string]any{}, patchMap, spec)
	}

	if patchList, ok := patch.([]any); ok {
		if baseList, ok := base.([]any); ok {
			return mergeLists(baseList, patchList, spec.strategy, spec.idKey)
		}
		return deepCopyList(patchList), nil
	}

	return deepCopy(patch), nil
}

func mergeMaps(base, patch map[string]any, inherited overlaySpec) (map[string]any, error) {
	spec := inherited.refine(patch)
	out := deepCopyMap(base)

	for _, k := range sortedKeys(patch) {
		if metaKeys[k] {
			continue
		}
		v := patch[k]

		// null deletes (RFC 7386)
		if v == nil {
			delete(out, k)
			continue
		}

		childSpec := spec.child(k)

		if existing, ok := out[k]; ok {
			merged, err := merge(existing, v, childSpec)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = merged
			continue
		}

		// new key entirely
		switch nv := v.(type) {
		case map[string]any:
			var merged any
			var err error
			if isListWrapper(nv) {
				merged, err = mergeWrappedList(nil, nv, childSpec)
			} else {
				merged, err = mergeMaps(map[string]any{}, nv, childSpec)
			}
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = merged
		default:
			out[k] = deepCopy(v)
		}
	}
	return out, nil
}

// mergeLists merges patch into base per strategy.
func mergeLists(base, patch []any, strategy ListStrategy, idKey string) ([]any, error) {
	switch strategy {
	case StrategyOverride:
		return deepCopyList(patch), nil

	case StrategyAppend, "":
		out := make([]any, 0, len(base)+len(patch))
		out = append(out, deepCopyList(base)...)
		out = append(out, deepCopyList(patch)...)
		return out, nil

	case StrategyUnique:
		out := deepCopyList(base)
		for _, v := range patch {
			if !containsValue(out, v) {
				out = append(out, deepCopy(v))
			}
		}
		return out, nil

	case StrategyByID:
		if idKey == "" {
			return nil, ErrMissingIDKey
		}
		return mergeByID(base, patch, idKey), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// mergeByID keys items by idKey. Base items carrying the key come first in
// base order (patched in place when the patch has the same id); new patch ids
// follow in patch order. Base items without the key are dropped; patch items
// without it are keyed by their string form.
func mergeByID(base, patch []any, idKey string) []any {
	order := make([]string, 0, len(base)+len(patch))
	byID := make(map[string]any)

	keyOf := func(item any) (string, bool) {
		m, ok := item.(map[string]any)
		if !ok {
			return "", false
		}
		id, ok := m[idKey]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%v", id), true
	}

	for _, item := range base {
		if id, ok := keyOf(item); ok {
			if _, seen := byID[id]; !seen {
				order = append(order, id)
			}
			byID[id] = deepCopy(item)
		}
	}
	for _, item := range patch {
		id, ok := keyOf(item)
		if !ok {
			id = fmt.Sprintf("%v", item)
		}
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = deepCopy(item)
	}

	out := make([]any, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// mergeWrappedList handles an overlay of the form
//
//	{ strategy: unique, id_key: id, __list__: [...] }
//
// replacing a list-valued node.
func mergeWrappedList(base []any, wrapper map[string]any, spec overlaySpec) (any, error) {
	strategy := spec.strategy
	if s, ok := wrapper["strategy"].(string); ok {
		strategy = ListStrategy(s)
	}
	idKey := spec.idKey
	if k, ok := wrapper["id_key"].(string); ok {
		idKey = k
	}
	raw, present := wrapper["__list__"]
	if !present {
		// Wrapper only adjusts strategy; merge an empty patch list.
		return mergeLists(base, nil, strategy, idKey)
	}
	data, ok := raw.([]any)
	if !ok {
		// Malformed wrapper: treat its payload as a replacement.
		return deepCopy(raw), nil
	}
	return mergeLists(base, data, strategy, idKey)
}

func isListWrapper(m map[string]any) bool {
	if _, ok := m["__list__"]; ok {
		return true
	}
	_, hasStrategy := m["strategy"]
	_, hasIDKey := m["id_key"]
	return hasStrategy || hasIDKey
}

func containsValue(list []any, v any) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, v) {
			return true
		}
	}
	return false
}

func deepCopy(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return deepCopyMap(tv)
	case []any:
		return deepCopyList(tv)
	default:
		return v
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}

func deepCopyList(l []any) []any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = deepCopy(v)
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
