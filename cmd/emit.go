package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/smarthome-go/starfield/starfield"
)

func emitAction(ctx *cli.Context) error {
	if ctx.Args().Present() {
		return fmt.Errorf("Unexpected argument `%s`", ctx.Args().First())
	}

	variant, err := starfield.ParseVariant(ctx.String("variant"))
	if err != nil {
		return err
	}

	params := starfield.Params{
		Stars: ctx.Int("stars"),
		Timer: ctx.Int("timer"),
	}

	seed := int64(ctx.Int("seed"))
	var source starfield.Source
	if seed == 0 {
		source, seed = starfield.NewClockSource()
	} else {
		source = starfield.NewSeededSource(seed)
	}

	stars, err := starfield.GenerateStars(params, source, variant.HasPhase())
	if err != nil {
		return err
	}

	if ctx.Bool("dump") {
		fmt.Fprint(ctx.App.ErrWriter, spew.Sdump(stars))
	}

	program, err := starfield.Build(variant, params, stars)
	if err != nil {
		return err
	}

	outputPath := ctx.Path("output")
	if err := writeProgram(ctx.App.Writer, outputPath, program); err != nil {
		return err
	}

	if ctx.Bool("verbose") || isTerminal(ctx.App.Writer) {
		destination := outputPath
		if destination == "" {
			destination = "stdout"
		}
		log.Printf("Emitted `%s` program: %d stars, timer %d, seed %d, %d lines to %s\n", variant, params.Stars, params.Timer, seed, program.Len(), destination)
	}

	return nil
}

func writeProgram(stdout io.Writer, path string, program io.WriterTo) error {
	if path == "" {
		_, err := program.WriteTo(stdout)
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Could not create output file `%s`: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	if _, err := program.WriteTo(writer); err != nil {
		file.Close()
		return err
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("Could not write output file `%s`: %w", path, err)
	}

	return file.Close()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
