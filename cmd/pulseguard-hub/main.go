// FilePath: cmd/pulseguard-hub/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/pulseguard/hub/internal/config"
	"github.com/pulseguard/hub/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting PulseGuard Hub v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ____        __           ______                     __",
		"   / __ \\__  __/ /_______   / ____/_  ______ __________/ /",
		"  / /_/ / / / / / ___/ _ \\ / / __/ / / / __ `/ ___/ __  / ",
		" / ____/ /_/ / (__  )  __// /_/ / /_/ / /_/ / /  / /_/ /  ",
		"/_/    \\__,_/_/____/\\___/ \\____/\\__,_/\\__,_/_/   \\__,_/   ",
		"..........................................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
