// Package assembler renders prompt slots from an assembled pack tree,
// combining pack defaults, MCP provider variables, and caller variables, and
// records lineage for every render.
package assembler

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"text/template"

	"dario.cat/mergo"
	"github.com/apegpt/queryflow/pkg/mcp"
	"github.com/apegpt/queryflow/pkg/packs"
	"golang.org/x/sync/errgroup"
)

// Provider is the variable source contract the assembler consumes.
type Provider = mcp.Provider

// SlotMaterial is the result of rendering one slot.
type SlotMaterial struct {
	Slot    string
	Prompt  string
	Extras  map[string]string
	Lineage map[string]any
}

// Assembler renders slots from one effective pack tree. It is safe for
// concurrent use; the tree is never mutated after construction.
type Assembler struct {
	tree         packs.Tree
	pack         *packs.PackRef
	overlayStack []string
	providers    []Provider
	caps         map[string]any
	logger       *slog.Logger
}

// New creates an assembler over an assembled tree. caps are deployment-wide
// variables that sit between pack defaults and provider variables.
func New(tree packs.Tree, pack *packs.PackRef, overlayStack []string, providers []Provider, caps map[string]any) *Assembler {
	return &Assembler{
		tree:         tree,
		pack:         pack,
		overlayStack: overlayStack,
		providers:    providers,
		caps:         caps,
		logger:       slog.With("component", "assembler"),
	}
}

// Render renders the named slot. Variable precedence, later wins:
// pack defaults < caps < provider vars < explicit vars.
func (a *Assembler) Render(ctx context.Context, slot string, vars map[string]any, reqCtx map[string]any) (*SlotMaterial, error) {
	tmplPath := "slots/" + slot + ".tmpl"
	tmplBytes, ok := a.tree[tmplPath]
	if !ok {
		return nil, &SlotNotFoundError{Slot: slot}
	}

	extras := a.collectExtras(slot)

	defaults, err := packs.LoadYAML(a.tree, "slots/"+slot+".defaults.yaml")
	if err != nil {
		return nil, &RenderError{Slot: slot, Err: err}
	}

	providerVars, err := a.gatherProviderVars(ctx, slot, reqCtx)
	if err != nil {
		return nil, err
	}

	finalVars := map[string]any{}
	for _, layer := range []map[string]any{defaults, a.caps, providerVars, vars} {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&finalVars, layer, mergo.WithOverride); err != nil {
			return nil, &RenderError{Slot: slot, Err: err}
		}
	}

	tmpl, err := template.New(slot).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, &RenderError{Slot: slot, Err: err}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, finalVars); err != nil {
		return nil, &RenderError{Slot: slot, Err: err}
	}

	lineage := a.lineage(slot, tmplBytes, extras, providerVars, finalVars)

	return &SlotMaterial{
		Slot:    slot,
		Prompt:  buf.String(),
		Extras:  extras,
		Lineage: lineage,
	}, nil
}

// collectExtras gathers sibling material under slots/<slot>/.
func (a *Assembler) collectExtras(slot string) map[string]string {
	prefix := "slots/" + slot + "/"
	extras := make(map[string]string)
	for rel, b := range a.tree {
		if strings.HasPrefix(rel, prefix) {
			extras[strings.TrimPrefix(rel, prefix)] = string(b)
		}
	}
	return extras
}

// gatherProviderVars queries every registered provider concurrently. A
// provider listed in the slot's optional_providers may fail without aborting
// the render; any other failure does.
func (a *Assembler) gatherProviderVars(ctx context.Context, slot string, reqCtx map[string]any) (map[string]any, error) {
	if len(a.providers) == 0 {
		return nil, nil
	}

	optional := map[string]bool{}
	if a.pack != nil {
		if spec, ok := a.pack.Manifest.Slots[slot]; ok {
			for _, name := range spec.OptionalProviders {
				optional[name] = true
			}
		}
	}

	var mu sync.Mutex
	merged := make(map[string]any)

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range a.providers {
		g.Go(func() error {
			vars, err := p.VarsForSlot(gctx, slot, reqCtx)
			if err != nil {
				if optional[p.Name()] {
					a.logger.Warn("Optional provider failed",
						"provider", p.Name(), "slot", slot, "error", err)
					return nil
				}
				return &RenderError{Slot: slot, Err: fmt.Errorf("provider %s: %w", p.Name(), err)}
			}
			mu.Lock()
			for k, v := range vars {
				merged[k] = v
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (a *Assembler) lineage(slot string, tmplBytes []byte, extras map[string]string, providerVars, finalVars map[string]any) map[string]any {
	inputHashes := make(map[string]string, len(extras))
	for name, content := range extras {
		inputHashes[name] = hashBytes([]byte(content))
	}

	lineage := map[string]any{
		"slot":               slot,
		"template_hash":      hashBytes(tmplBytes),
		"input_hashes":       inputHashes,
		"provider_vars_hash": hashValue(providerVars),
		"vars_hash":          hashValue(finalVars),
		"overlay_stack":      a.overlayStack,
	}
	if a.pack != nil {
		lineage["pack_version"] = a.pack.Version
		lineage["pack_hash"] = a.pack.Hash
	}
	return lineage
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// hashValue hashes the canonical JSON form of v. encoding/json emits map
// keys in sorted order, so equal maps hash equally.
func hashValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return hashBytes(b)
}
