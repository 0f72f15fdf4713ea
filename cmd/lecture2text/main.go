package main

import (
	"lecture-whisper/cmd/lecture2text/cmd"
)

func main() {
	cmd.Execute()
}
