package main

import "mindprint/cmd/mp/root"

func main() {
	root.Execute()
}
