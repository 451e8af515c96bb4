package main

import (
	"flag"
	"fmt"
	"simple-structs/src"
)

var banner = `
 _______  ___   __   __  _______  ___      _______         _______  _______  ______    __   __  _______  _______  _______
|       ||   | |  |_|  ||       ||   |    |       |       |       ||       ||    _ |  |  | |  ||       ||       ||       |
|  _____||   | |       ||    _  ||   |    |    ___| ____  |  _____||_     _||   | ||  |  | |  ||       ||_     _||  _____|
| |_____ |   | |       ||   |_| ||   |    |   |___ |____| | |_____   |   |  |   |_||_ |  |_|  ||       |  |   |  | |_____
|_____  ||   | |       ||    ___||   |___ |    ___|       |_____  |  |   |  |    __  ||       ||      _|  |   |   _____| |
 _____| ||   | | ||_|| ||   |    |       ||   |___         _____| |  |   |  |   |  | ||       ||     |_   |   |  _____| |
|_______||___| |_|   |_||___|    |_______||_______|       |_______|  |___|  |___|  |_||_______||_______|  |___| |_______|
`

const VERSION = "0.0.0"

func main() {
	fmt.Printf("%s\n\n", banner)
	fmt.Printf("version: %s\n", VERSION)
	flag.Parse()
	// walk every container variant over the trailing arguments
	src.DemoStart(flag.Args())
}
