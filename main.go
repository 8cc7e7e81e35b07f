package main

import "github.com/alexiusacademia/gohsjoint/cmd"

func main() {
	cmd.Execute()
}
