// SPDX-License-Identifier: MPL-2.0

package broker

import "strings"

// BuildEnv produces the merged environment for launch configuration resolution:
//
//  1. Process environment snapshot (highest priority)
//  2. Dotenv file values, applied only for keys the process environment
//     does not already set
//
// The envFile path may point at a missing file; that is not an error. The
// returned map is a fresh snapshot: mutating it never touches the real
// process environment.
func BuildEnv(environ []string, envFile string) (map[string]string, []ParseWarning, error) {
	env := environToMap(environ)

	if envFile == "" {
		return env, nil, nil
	}

	fileVars, warnings, err := LoadEnvFile(envFile)
	if err != nil {
		return nil, warnings, err
	}
	for k, v := range fileVars {
		if _, set := env[k]; !set {
			env[k] = v
		}
	}

	return env, warnings, nil
}

// environToMap converts os.Environ()-style "KEY=value" entries into a map.
// Entries without '=' are skipped.
func environToMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}
