package cmds

import (
	"fmt"
)

// Version is set at build time.
var Version = "v0.0.1"

type VersionCommand struct{}

func (cmd *VersionCommand) Run() error {
	_, err := fmt.Println(Version)

	return err
}
