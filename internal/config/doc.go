// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional artemisup configuration file.
//
// The file lives at <config-dir>/artemisup/config.toml using platform
// conventions for <config-dir> (XDG on Linux, Application Support on macOS,
// APPDATA on Windows). It can pre-set the container runtime binary for users
// who do not want POD_CONTAINER in every shell, and default UI behavior.
// A missing file is not an error; defaults apply.
package config
