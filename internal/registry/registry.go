// Package registry owns the ordered collection of tagged zones and derives
// summary and annotation projections from it. Zones are append-ordered and
// addressed by position. Mutations are serialized; projections run against a
// snapshot taken under a read lock, so they never observe a registry
// mid-change. Projections are recomputed on demand and never cached.
package registry

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/readability-analyzer/internal/annotation"
	"github.com/jonathan/readability-analyzer/internal/scoring"
	"github.com/jonathan/readability-analyzer/internal/types"
)

// Registry is the mutable collection of tagged zones for one session.
type Registry struct {
	mu    sync.RWMutex
	zones []types.Zone
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends a zone with the given text and category. Text is trimmed before
// storage; blank text and unknown categories are rejected without mutating
// the registry.
func (r *Registry) Add(text string, category types.Category) (types.Zone, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.Zone{}, &BlankZoneError{}
	}
	if !category.Valid() {
		return types.Zone{}, &UnknownCategoryError{Category: category}
	}

	zone := types.Zone{Text: trimmed, Category: category}
	r.mu.Lock()
	r.zones = append(r.zones, zone)
	r.mu.Unlock()
	return zone, nil
}

// Remove deletes the zone at position, preserving the relative order of the
// remaining zones. An out-of-range position leaves the registry unchanged.
func (r *Registry) Remove(position int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if position < 0 || position >= len(r.zones) {
		return &PositionError{Position: position, Size: len(r.zones)}
	}
	r.zones = append(r.zones[:position], r.zones[position+1:]...)
	return nil
}

// Clear removes all zones.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.zones = nil
	r.mu.Unlock()
}

// Replace swaps the full zone list, validating every zone first so a bad
// entry never leaves the registry partially mutated. Used when restoring a
// persisted session.
func (r *Registry) Replace(zones []types.Zone) error {
	validated := make([]types.Zone, 0, len(zones))
	for _, z := range zones {
		trimmed := strings.TrimSpace(z.Text)
		if trimmed == "" {
			return &BlankZoneError{}
		}
		if !z.Category.Valid() {
			return &UnknownCategoryError{Category: z.Category}
		}
		validated = append(validated, types.Zone{Text: trimmed, Category: z.Category})
	}
	r.mu.Lock()
	r.zones = validated
	r.mu.Unlock()
	return nil
}

// Zones returns a copy of the zones in append order.
func (r *Registry) Zones() []types.Zone {
	r.mu.RLock()
	defer r.mu.RUnlock()
	zones := make([]types.Zone, len(r.zones))
	copy(zones, r.zones)
	return zones
}

// Len returns the number of zones.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.zones)
}

// Summaries computes the summary projection for every zone in registry order.
// The caller-supplied targets map is read-only input; a zone category missing
// from it fails fast with UnknownCategoryError.
func (r *Registry) Summaries(targets types.TargetMap) ([]types.ZoneSummary, error) {
	zones := r.Zones()
	summaries := make([]types.ZoneSummary, 0, len(zones))
	for _, z := range zones {
		target, ok := targets[z.Category]
		if !ok {
			return nil, &UnknownCategoryError{Category: z.Category}
		}
		stats := scoring.Analyze(z.Text)
		summaries = append(summaries, types.ZoneSummary{
			Category:       z.Category,
			Words:          stats.Words,
			EstimatedGrade: stats.Grade,
			TargetGrade:    target,
			Status:         types.StatusFor(stats.Grade, target),
		})
	}
	return summaries, nil
}

// AnnotateAll produces the annotated projection of every zone, in registry
// order. Zones are annotated concurrently; each annotation is pure, so only
// the snapshot needs serializing against mutation. Target resolution is
// checked up front so a missing category fails before any work starts.
func (r *Registry) AnnotateAll(ctx context.Context, targets types.TargetMap) ([]annotation.Result, error) {
	zones := r.Zones()
	for _, z := range zones {
		if _, ok := targets[z.Category]; !ok {
			return nil, &UnknownCategoryError{Category: z.Category}
		}
	}

	results := make([]annotation.Result, len(zones))
	g, gCtx := errgroup.WithContext(ctx)
	for i, z := range zones {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = annotation.Annotate(z.Text, z.Category, targets[z.Category])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
