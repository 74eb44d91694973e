// Public domain.

package main

import "github.com/soniakeys/protosep/internal/psprog"

func main() {
	psprog.Main()
}
