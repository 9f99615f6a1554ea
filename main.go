package main

import "itemlist/cmd"

func main() {
	cmd.Run()
}
