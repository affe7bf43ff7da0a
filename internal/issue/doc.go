// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for the launcher.
//
// ActionableError carries what operation failed, the resource involved, and
// concrete suggestions for fixing it. A config error telling the user to set
// POD_CONTAINER is worth far more than a bare "variable not set".
package issue
