package main

import "github.com/lmoreira/requerimento-service/cmd"

func main() {
	cmd.Execute()
}
