package main

import (
	"github.com/mj1618/nc-clear/cmd"
	_ "github.com/mj1618/nc-clear/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
