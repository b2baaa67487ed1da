package main

import (
	"github.com/tradinghub/blog-api/cmd"
)

func main() {
	cmd.Execute()
}
