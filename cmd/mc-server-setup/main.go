package main

import "github.com/oshokin/minecraft-server-setup/cmd/mc-server-setup/cmd"

func main() {
	cmd.Execute()
}
