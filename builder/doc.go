// Package builder provides deterministic topology constructors for the
// lvlgraph experiments: classic shapes (Ring, Complete, Grid), random
// models (Erdős–Rényi, preferential attachment, planted partitions), and
// the Zachary karate-club fixture.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; constructors return sentinel errors.
//
// Typical usage:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.ErdosRenyi(100, 0.05),
//	)
package builder
