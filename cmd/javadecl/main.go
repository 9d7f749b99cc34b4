package main

import "github.com/mvp-joe/javadecl/internal/cli"

func main() {
	cli.Execute()
}
