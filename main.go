package main

import "github.com/GiyoMoon/WitchTrade-BE/cmd"

func main() {
	cmd.Execute()
}
