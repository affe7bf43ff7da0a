// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"artemisup/internal/broker"
)

// renderDryRun prints the resolved launch without executing it: the engine,
// the binary it resolved to, the persistence mode, and the exact argument
// list that would be dispatched — everything a user needs to understand what
// artemisup would do.
func renderDryRun(w io.Writer, launcher *broker.Launcher) {
	cfg := launcher.Config()
	engine := launcher.Engine()

	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Engine:"), engine.Name())
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Binary:"), engine.BinaryPath())
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Image:"), broker.Image)
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Container:"), broker.ContainerName)
	fmt.Fprintf(w, "  %s %v\n", VerboseHighlightStyle.Render("Persistence:"), !cfg.PersistenceDisabled)
	if cfg.PersistenceDisabled {
		fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Mount:"),
			cfg.HostMountPath+":"+string(broker.EtcOverrideTarget))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, VerboseHighlightStyle.Render("  Invocation:"))
	fmt.Fprintf(w, "    %s %s\n", engine.BinaryPath(), strings.Join(launcher.RunArgs(), " "))
	fmt.Fprintln(w)
}
