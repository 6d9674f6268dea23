// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/txtrip/cmd/txtrip/cmd"
)

func main() {
	cmd.Execute()
}
