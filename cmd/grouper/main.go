package main

import (
	"flag"
	"fmt"
	"os"

	"patient-grouper/internal/cli"
	"patient-grouper/internal/gui"
)

func main() {
	// Define flags
	input := flag.String("input", "", "Input CSV file or DICOM folder")
	inputShort := flag.String("i", "", "Input path (shorthand)")

	dicomMode := flag.Bool("dicom", false, "Treat the input path as a DICOM folder")
	dicomShort := flag.Bool("d", false, "DICOM mode (shorthand)")

	recursive := flag.Bool("recursive", true, "Search subdirectories for DICOM files")
	recursiveShort := flag.Bool("r", true, "Recursive (shorthand)")

	output := flag.String("output", "", "Write the reports to a file instead of stdout")
	outputShort := flag.String("o", "", "Output file (shorthand)")

	help := flag.Bool("help", false, "Show help message")
	helpShort := flag.Bool("h", false, "Help (shorthand)")

	// Custom usage message
	flag.Usage = func() {
		cli.PrintUsage()
	}

	flag.Parse()

	// Handle help flag
	if *help || *helpShort {
		cli.PrintUsage()
		return
	}

	// Merge short and long flags (prefer long if both specified)
	inputPath := *input
	if inputPath == "" {
		inputPath = *inputShort
	}
	// A bare positional argument is the input path too
	if inputPath == "" {
		inputPath = flag.Arg(0)
	}

	outputFile := *output
	if outputFile == "" {
		outputFile = *outputShort
	}

	isRecursive := *recursive
	if !*recursiveShort {
		isRecursive = false
	}

	isDicom := *dicomMode || *dicomShort

	// No input path specified = GUI mode
	if inputPath == "" {
		app := gui.NewApp()
		app.Run()
		return
	}

	opts := cli.Options{
		InputPath:  inputPath,
		DicomMode:  isDicom,
		Recursive:  isRecursive,
		OutputFile: outputFile,
	}

	if err := cli.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
