package main

import "github.com/df07/go-raytracer/cmd"

func main() {
	cmd.Execute()
}
