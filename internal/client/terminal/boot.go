package terminal

import (
	"fmt"
	"strings"
	"time"
)

var bootMessages = []string{
	"System Check... OK",
	"Loading Kernel... OK",
	"Loading Drivers... OK",
	"Loading Services... OK",
	"Booting... OK",
	"----------------------------------------",
	"Allocating Memory Resources... 512MB OK",
	"Loading Extension Modules... 6 Loaded",
	"Calibrating Display Settings... Set",
	"Checking Disk Space... 120GB Free",
	"Updating Local Data Cache... 245 Items Updated",
	"Testing Audio Output... Stereo OK",
	"Scanning for External Devices... 2 Connected",
	"Compiling User Scripts... 15 Scripts Compiled",
	"Performing Security Scan... No Threats Found",
	"Syncing with Cloud Storage... 1.2GB Synced",
	"Initializing Custom Workflows... 4 Workflows Ready",
	"Refreshing User Session... Session Restored",
	"Applying System Patches... Patch 1.4.2 Applied",
	"Generating Performance Report... 99% Efficiency",
	"Finalizing User Interface... Custom Theme Applied",
	"Activating Voice Commands... Voice Recognition Active",
	"Running Diagnostic Tests... All Systems Functional",
	"----------------------------------------",
	"Making up more random messages... OK",
	"Initializing Core Modules... OK",
	"Establishing Data Connections... OK",
	"Drinking Caffeine... OK",
	"Setting Up User Interface... OK",
	"Verifying Security Protocols... OK",
	"Synchronizing Time and Date... OK",
	"Activating Plugin Support... OK",
	"Loading Resource Libraries... OK",
	"Preparing Workspace Environment... OK",
	"Optimizing Performance Settings... OK",
	"Starting Background Services... OK",
	"Verifying License and Subscriptions... OK",
	"Loading User Preferences... OK",
	"Checking for Updates... OK",
	"Finalizing Setup... OK",
}

const bootLineInterval = 30 * time.Millisecond

// loadingBar renders an ASCII progress bar, 0-100, over 50 blocks.
func loadingBar(progress int) string {
	const totalBlocks = 50

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	filled := progress * totalBlocks / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", totalBlocks-filled)
}

// playBootSequence prints the cosmetic boot messages and a loading bar.
func (a *App) playBootSequence() {
	for _, msg := range bootMessages {
		fmt.Fprintln(a.out, msg)
		time.Sleep(bootLineInterval)
	}

	for p := 0; p <= 100; p += 10 {
		fmt.Fprintf(a.out, "\r%s", loadingBar(p))
		time.Sleep(bootLineInterval)
	}
	fmt.Fprintln(a.out)
}
