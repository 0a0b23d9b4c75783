// Package sim provides the stochastic fleet-lifecycle engine behind fleetgen.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - asset.go: Asset lifecycle (in_pool → in_transit → {in_pool, lost}) and the Fleet that owns it
//   - simulator.go: The daily loop (trip completion → dispatch → replenishment → tally)
//   - sampler.go: Trip-duration and replenishment-count distributions
//
// # Architecture
//
// The sim package holds the engine; output data types and their persistence
// sinks live in sim/record, which has no dependency back on sim. All
// randomness flows from a single master seed through PartitionedRNG (rng.go),
// so a (Config, seed) pair reproduces a byte-identical run.
package sim
