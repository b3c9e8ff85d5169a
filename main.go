package main

import "github.com/allensrj/mcp-cdisc-library/cmd"

// version is stamped at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
