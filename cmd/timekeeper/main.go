package main

import "github.com/amirhossein-jamali/timekeeper/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
