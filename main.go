package main

import "github.com/chrisdamba/foodroadtrip/cmd"

func main() {
	cmd.Execute()
}
