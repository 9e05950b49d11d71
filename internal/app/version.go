package app

import (
	"fmt"
	"io"
)

// Version is the release identifier, overridden at build time with
// -ldflags "-X github.com/agbru/bigcalc/internal/app.Version=...".
var Version = "dev"

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "bigcalc %s\n", Version)
}
