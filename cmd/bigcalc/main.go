package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/agbru/bigcalc/internal/app"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		// Flag parse failures already printed their own diagnostic.
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(os.Stderr, "bigcalc: %v\n", err)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
