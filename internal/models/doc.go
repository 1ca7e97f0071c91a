// Package models provides compartmental epidemic models for simulation.
//
// Each model implements the [epi.System] interface, defining the
// differential equations governing the populations:
//
//   - [HostVector]: human SIR coupled to mosquito SI with cross-infection
//   - [SIR]: direct-transmission host-only baseline
//
// Models are immutable once constructed except through [HostVector.SetParam],
// which revalidates the full coefficient set.
package models
