// Command vidmod loads a project directory's manifest.yml, wires its
// node graph, and runs it to completion.
package main

import (
	"fmt"
	"os"

	"github.com/machinefabric/vidmod-go/project"
	"github.com/machinefabric/vidmod-go/registry"

	_ "github.com/machinefabric/vidmod-go/vidplugins"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "%s [path]\n", args[0])
		return 1
	}

	projectPath := args[1]
	proj, err := project.Load(projectPath, registry.Global())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load project %s: %v\n", projectPath, err)
		return 1
	}

	if err := proj.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		return 1
	}

	return 0
}
