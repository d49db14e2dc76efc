package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"graphar/internal/domain"
	"graphar/internal/scene"
)

// ─────────────────────────────────────────────────────────────
// Graph Service — configuration checks and scene building
// ─────────────────────────────────────────────────────────────

// GraphService turns graphing configurations into scene graphs. It owns
// the per-scene build guard: one build pipeline per scene at a time.
type GraphService struct {
	datasets *DatasetService
	emitter  EventEmitter
	builds   sceneBuildGuard

	// WholeDatasetSniffing widens axis-key eligibility from the first
	// record to the whole dataset. Off by default.
	WholeDatasetSniffing bool
}

// NewGraphService creates a GraphService.
func NewGraphService(datasets *DatasetService, emitter EventEmitter) *GraphService {
	return &GraphService{datasets: datasets, emitter: emitter}
}

// NewConfiguration validates the user's choices and materializes an
// immutable configuration. Fewer than 2 or more than 3 feature keys,
// an unknown theme or an unknown dataset are rejected.
func (s *GraphService) NewConfiguration(datasetName string, graphType domain.GraphType, features []string, categoryKey, themeID string) (*domain.GraphingConfiguration, error) {
	if len(features) < 2 || len(features) > 3 {
		return nil, fmt.Errorf("need 2 or 3 numeric feature keys, got %d", len(features))
	}
	if themeID == "" {
		themeID = scene.DefaultThemeID
	}
	if _, ok := scene.ThemeByID(themeID); !ok {
		return nil, fmt.Errorf("unknown theme: %q", themeID)
	}
	ds, err := s.datasets.Get(datasetName)
	if err != nil {
		return nil, err
	}
	return &domain.GraphingConfiguration{
		ID:          uuid.New().String(),
		Dataset:     ds,
		GraphType:   graphType,
		Features:    append([]string(nil), features...),
		CategoryKey: categoryKey,
		ThemeID:     themeID,
	}, nil
}

// BuildGraph builds the scene graph for a single configuration.
// Rendering preconditions that fail (no renderer for the graph type,
// not enough usable axis keys) yield an empty root and empty map with a
// warning event, never an error: the host leaves the scene unplaced.
func (s *GraphService) BuildGraph(ctx context.Context, cfg *domain.GraphingConfiguration) (*scene.Node, scene.NodeMap, error) {
	build, ok := scene.RendererFor(cfg.GraphType)
	if !ok {
		s.warn(ctx, fmt.Sprintf("no renderer for graph type %q", cfg.GraphType))
		return scene.NewGroup(), scene.NodeMap{}, nil
	}

	theme, _ := scene.ThemeByID(cfg.ThemeID)
	root, nodes := build(scene.BuildInput{
		Records:              cfg.Dataset.Records,
		AxisKeys:             cfg.Features,
		CategoryKey:          cfg.CategoryKey,
		Theme:                theme,
		WholeDatasetSniffing: s.WholeDatasetSniffing,
	})
	if len(nodes) == 0 {
		s.warn(ctx, fmt.Sprintf("dataset %q: not enough usable axis features", cfg.Dataset.Name))
	}
	return root, nodes, nil
}

// BuildScene runs every configuration's builder and merges the results
// under one root for a single scene. Each build's nodes and map are
// independent; the merged map resolves handle collisions first-write-
// wins, though collisions should not occur (handles are fresh
// identities). A second build for the same scene while one is running
// is rejected.
func (s *GraphService) BuildScene(ctx context.Context, sceneID string, cfgs []*domain.GraphingConfiguration) (*scene.Node, scene.NodeMap, error) {
	if !s.builds.TryLock(sceneID) {
		return nil, nil, fmt.Errorf("a build for scene %s is already running", sceneID)
	}
	defer s.builds.Unlock(sceneID)

	root := scene.NewGroup()
	merged := scene.NodeMap{}
	for _, cfg := range cfgs {
		sub, nodes, err := s.BuildGraph(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		root.Add(sub)
		merged.Merge(nodes)
	}
	return root, merged, nil
}

// WaitBuilds blocks until in-flight builds finish or ctx is cancelled.
// Used for graceful shutdown.
func (s *GraphService) WaitBuilds(ctx context.Context) {
	s.builds.WaitAll(ctx)
}

func (s *GraphService) warn(ctx context.Context, msg string) {
	log.Printf("graph: %s", msg)
	s.emitter.Emit(ctx, "graph:warning", msg)
}
