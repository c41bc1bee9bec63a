package main

import (
	"github.com/username/taxsarthi/backend/src/cmd"
)

func main() {
	cmd.Execute()
}
