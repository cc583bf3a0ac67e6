package main

import (
	"gitlab.com/nunet/gputemp/cmd"
)

func main() {
	// Execute command-line interface; should be the last call in main()
	cmd.Execute()
}
