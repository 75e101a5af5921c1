package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smarthome-go/starfield/starfield"
)

func variantsAction(ctx *cli.Context) error {
	caser := cases.Title(language.AmericanEnglish)

	for _, variant := range starfield.Variants {
		marker := ""
		if variant == starfield.DefaultVariant {
			marker = " (default)"
		}

		if _, err := fmt.Fprintf(ctx.App.Writer, "%s (%s): %s%s\n", caser.String(variant.String()), variant, variant.Description(), marker); err != nil {
			return err
		}
	}

	return nil
}
