// SPDX-License-Identifier: MPL-2.0

// Package container provides a thin abstraction over CLI container engines (Docker/Podman).
//
// The Engine interface defines the operations the launcher needs: Run, Available,
// and Version. Two implementations are provided, DockerEngine and PodmanEngine, both
// embedding BaseCLIEngine for shared argument construction and command execution.
//
// Engines are never auto-detected. ResolveEngine takes the runtime binary name or
// path configured by the user (the POD_CONTAINER environment variable) and selects
// the engine type from the binary's basename. A binary that cannot be found or is
// not executable yields an EngineNotAvailableError.
package container
