package assembler

import (
	"context"
	"errors"
	"testing"

	"github.com/apegpt/queryflow/pkg/packs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name string
	vars map[string]any
	err  error
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) VarsForSlot(_ context.Context, _ string, _ map[string]any) (map[string]any, error) {
	return p.vars, p.err
}

func testTree() packs.Tree {
	return packs.Tree{
		"slots/wh_sql.tmpl":          []byte("Schema: {{.schema}}; Question: {{.question}}"),
		"slots/wh_sql.defaults.yaml": []byte("schema: default-schema\ndialect: clickhouse\n"),
		"slots/wh_sql/policy.md":     []byte("no deletes"),
		"slots/wh_sql/fewshot.yaml":  []byte("examples: []"),
	}
}

func TestRenderVariablePrecedence(t *testing.T) {
	provider := &fakeProvider{name: "db-meta", vars: map[string]any{"schema": "live-schema"}}
	a := New(testTree(), nil, nil, []Provider{provider}, map[string]any{"schema": "caps-schema"})

	// explicit vars beat provider vars beat caps beat defaults
	material, err := a.Render(context.Background(), "wh_sql",
		map[string]any{"question": "top users"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Schema: live-schema; Question: top users", material.Prompt)

	material, err = a.Render(context.Background(), "wh_sql",
		map[string]any{"question": "top users", "schema": "forced"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Schema: forced; Question: top users", material.Prompt)
}

func TestRenderCollectsExtras(t *testing.T) {
	a := New(testTree(), nil, nil, nil, nil)

	material, err := a.Render(context.Background(), "wh_sql",
		map[string]any{"question": "q"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "no deletes", material.Extras["policy.md"])
	assert.Contains(t, material.Extras, "fewshot.yaml")
}

func TestRenderSlotNotFound(t *testing.T) {
	a := New(testTree(), nil, nil, nil, nil)

	_, err := a.Render(context.Background(), "missing", nil, nil)
	var notFound *SlotNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Slot)
}

func TestRenderMissingVariableFails(t *testing.T) {
	a := New(testTree(), nil, nil, nil, nil)

	// question never supplied
	_, err := a.Render(context.Background(), "wh_sql", nil, nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderRequiredProviderFailureAborts(t *testing.T) {
	provider := &fakeProvider{name: "db-meta", err: errors.New("unreachable")}
	a := New(testTree(), nil, nil, []Provider{provider}, nil)

	_, err := a.Render(context.Background(), "wh_sql",
		map[string]any{"question": "q"}, nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderOptionalProviderFailureTolerated(t *testing.T) {
	pack := &packs.PackRef{
		Version: "1.0.0",
		Manifest: packs.Manifest{
			Version: "1.0.0",
			Slots: map[string]packs.SlotSpec{
				"wh_sql": {OptionalProviders: []string{"db-ref"}},
			},
		},
	}
	provider := &fakeProvider{name: "db-ref", err: errors.New("unreachable")}
	a := New(testTree(), pack, nil, []Provider{provider}, nil)

	material, err := a.Render(context.Background(), "wh_sql",
		map[string]any{"question": "q"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Schema: default-schema; Question: q", material.Prompt)
	assert.Equal(t, "1.0.0", material.Lineage["pack_version"])
}

func TestRenderLineageStable(t *testing.T) {
	a := New(testTree(), nil, []string{"acme/common", "acme/prod"}, nil, nil)

	m1, err := a.Render(context.Background(), "wh_sql", map[string]any{"question": "q"}, nil)
	require.NoError(t, err)
	m2, err := a.Render(context.Background(), "wh_sql", map[string]any{"question": "q"}, nil)
	require.NoError(t, err)

	assert.Equal(t, m1.Lineage["template_hash"], m2.Lineage["template_hash"])
	assert.Equal(t, m1.Lineage["vars_hash"], m2.Lineage["vars_hash"])
	assert.Equal(t, []string{"acme/common", "acme/prod"}, m1.Lineage["overlay_stack"])
}
