package cli

import (
	"fmt"
	"io"

	"github.com/totemkb/zmkenv/internal/model"
)

// printUsageGuide prints the in-container build instructions right before
// the interactive session starts, so they are the last thing on screen when
// the user lands in the shell.
func printUsageGuide(w io.Writer) {
	fmt.Fprintf(w, "%s %s:\n", iconInfo, infoStyle.Render("Run following commands if entering this environment for the first time"))
	fmt.Fprintf(w, "%s\n", cmdStyle.Render("west init -l app/ && west update && west zephyr-export"))

	fmt.Fprintf(w, "%s %s:\n", iconInfo, infoStyle.Render("To build the firmware for both halves of the keyboard"))
	for _, side := range []string{"left", "right"} {
		fmt.Fprintf(w, "%s\n", cmdStyle.Render(westBuildCommand(side)))
	}

	fmt.Fprintf(w, "%s %s %s\n", iconInfo,
		infoStyle.Render("Generated files can be found in"),
		cmdStyle.Render("build/<left|right>/zephyr/zmk.uf2"))
}

// westBuildCommand renders the west build invocation for one keyboard half.
func westBuildCommand(side string) string {
	return fmt.Sprintf(
		"west build -s app -d %s/%s -p -b '%s' -- -DZMK_CONFIG=%s -DSHIELD=%s_%s",
		model.BuildMountPath, side, model.Board, model.ConfigMountPath, model.ShieldPrefix, side,
	)
}
