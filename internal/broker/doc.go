// SPDX-License-Identifier: MPL-2.0

// Package broker composes and dispatches the ActiveMQ Artemis container launch.
//
// The package owns the fixed launch shape: image reference, container name,
// the two published ports (61616 for messaging protocols, 8161 for the web
// console), and the optional etc-override bind mount that disables message
// persistence.
//
// ResolveLaunchConfig builds an immutable LaunchConfig from a snapshot of the
// process environment merged with an optional dotenv file; the process
// environment always wins over file values ("source if present" semantics).
// Launcher then turns the config into a single blocking container run and
// reports the child's exit code verbatim. There are no retries anywhere:
// this is a one-shot launcher.
package broker
