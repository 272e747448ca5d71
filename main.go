package main

import "github.com/mouse-blink/calcsolve/cmd"

func main() {
	cmd.Execute()
}
