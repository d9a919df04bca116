package main

import (
	"fmt"
	"os"

	"lee/internal/ipc"
)

func main() {
	cmd := "listen"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := ipc.SendCommand(cmd); err != nil {
		fmt.Println("lee is not running:", err)
		os.Exit(1)
	}
}
