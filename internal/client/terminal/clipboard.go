package terminal

import "github.com/atotto/clipboard"

// writeClipboard is a test seam over the system clipboard.
var writeClipboard = clipboard.WriteAll
