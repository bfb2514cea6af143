package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mkoval/iconset"
	"github.com/mkoval/iconset/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┬┐
││  │ ││││└─┐├┤  │
┴└─┘└─┘┘└┘└─┘└─┘ ┴

Icon set generator.
    Version: %s

`

var (
	// Flags
	outDir    = flag.String("out", "", "Output directory (default: <program dir>/src/assets/icons)")
	sizeList  = flag.String("sizes", "", "Comma separated icon sizes (default: 16,32,48,64,96,128)")
	source    = flag.String("src", "", "Source image path or URL, resampled to each size")
	render    = flag.Bool("render", false, "Render a glyph badge per size instead of the placeholder")
	letter    = flag.String("letter", string(iconset.DefaultLetter), "Glyph stamped on rendered icons")
	format    = flag.String("format", "png", "Output format of the generated files: png, jpg or bmp")
	bundleIco = flag.Bool("ico", false, "Additionally bundle the generated images into icon.ico")
	quiet     = flag.Bool("quiet", false, "Suppress the per-file notices and show a progress indicator instead")
)

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid size list: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	glyph := []rune(*letter)
	if len(glyph) != 1 {
		log.Fatalf(utils.DecorateText("Please provide a single letter for the -letter flag!", utils.ErrorMessage))
	}

	dir := *outDir
	if dir == "" {
		dir, err = defaultOutputDir()
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to resolve the default output directory: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	g := &iconset.Generator{
		Sizes:     sizes,
		OutputDir: dir,
		Source:    *source,
		Render:    *render,
		Letter:    glyph[0],
		Format:    *format,
		BundleICO: *bundleIco,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONSET", utils.StatusMessage),
		utils.DecorateText("⇢ generating the icon set...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	// The per-file notices and the spinner would fight over the same
	// terminal, so the spinner is only shown when the notices are muted.
	if *quiet {
		g.Log = io.Discard
		spinner.Start()
	}

	now := time.Now()
	err = g.Generate()

	if *quiet {
		if err != nil {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ ICONSET", utils.StatusMessage),
				utils.DecorateText("generating the icon set failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ ICONSET", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the icon set has been generated successfully ✔", utils.SuccessMessage),
			)
		}
		spinner.Stop()
	}

	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the icon set: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// parseSizes converts the comma separated size list into integers,
// keeping the sequence order. An empty list selects the default sizes.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var sizes []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		size, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid icon size", tok)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// defaultOutputDir resolves the icons directory relative to the program's own location.
func defaultOutputDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "src", "assets", "icons"), nil
}
