// Command topomap trains topological maps over CSV point data.
package main

import "github.com/katalvlaran/topomap/cmd/topomap/commands"

func main() {
	commands.Execute()
}
