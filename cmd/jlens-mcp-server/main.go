// Command jlens-mcp-server finds the jlens-mcp-server JAR and runs it under Java.
package main

import "github.com/bhxch/jlens-launcher/cmd/jlens-mcp-server/cmd"

func main() {
	cmd.Execute()
}
