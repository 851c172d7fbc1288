// SPDX-License-Identifier: EPL-2.0

// Command mp3wav converts every .mp3 file in the current directory to
// .wav, writing the outputs next to their sources. It takes no
// arguments and always exits 0; per-file failures are reported and
// skipped.
package main

import (
	"fmt"
	"os"

	"github.com/swhelan123/mp3wav"
)

// Directory to scan (the directory the tool is run from).
const audioDirectory = "."

func main() {
	info, err := os.Stat(audioDirectory)
	if err != nil || !info.IsDir() {
		fmt.Printf("Error: Directory '%s' not found.\n", audioDirectory)
	} else {
		conv := mp3wav.NewConverter(os.Stdout)
		if _, err := conv.ConvertDir(audioDirectory); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}

	fmt.Println("Conversion process finished.")
}
