// Package main implements the iso20022-validate CLI tool.
// It decodes and validates ISO 20022 message files in XML or JSON form.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/engine"
	"github.com/openpayments/iso20022/stream"
	"github.com/openpayments/iso20022/wire"
)

const (
	version = "0.1.0"
	usage   = `iso20022-validate - ISO 20022 Message Validator

Usage:
  iso20022-validate [options] <file>...
  iso20022-validate [options] -           (read from stdin)
  cat message.xml | iso20022-validate -   (pipe input)

Examples:
  iso20022-validate payment.xml
  iso20022-validate -format json payment.json
  iso20022-validate -strict -output json payment.xml
  iso20022-validate -feed messages.ndjson
  iso20022-validate *.xml
  cat payment.xml | iso20022-validate -

Options:
`
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration
type Config struct {
	Format      string
	Output      OutputFormat
	Strict      bool
	Feed        bool
	Workers     int
	Quiet       bool
	ShowVersion bool
	Help        bool
	Files       []string
}

// ValidationOutput represents the JSON output structure
type ValidationOutput struct {
	File       string `json:"file"`
	Tag        string `json:"tag,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
	ErrorCode  int    `json:"errorCode,omitempty"`
	Duration   string `json:"duration"`
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("iso20022-validate v%s\n", version)
		os.Exit(0)
	}

	if config.Help || len(config.Files) == 0 {
		flag.Usage()
		os.Exit(0)
	}

	os.Exit(run(config))
}

func parseFlags() *Config {
	config := &Config{Output: OutputText}

	var output string
	flag.StringVar(&config.Format, "format", "auto", "Wire format: xml, json, auto (by file extension)")
	flag.StringVar(&output, "output", "text", "Output format: text, json")
	flag.BoolVar(&config.Strict, "strict", false, "Require exactly one populated alternative in choice components")
	flag.BoolVar(&config.Feed, "feed", false, "Treat each input as a newline-delimited JSON message feed")
	flag.IntVar(&config.Workers, "workers", 4, "Parallel workers in feed mode")
	flag.BoolVar(&config.Quiet, "quiet", false, "Only report failures")
	flag.BoolVar(&config.ShowVersion, "v", false, "Show version")
	flag.BoolVar(&config.Help, "help", false, "Show help")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	switch strings.ToLower(output) {
	case "json":
		config.Output = OutputJSON
	default:
		config.Output = OutputText
	}

	config.Files = flag.Args()
	return config
}

func run(config *Config) int {
	hasErrors := false
	outputs := make([]ValidationOutput, 0, len(config.Files))

	for _, file := range config.Files {
		if file == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
				hasErrors = true
				continue
			}
			output, failed := validateData(data, "stdin", config)
			outputs = append(outputs, output)
			hasErrors = hasErrors || failed
			continue
		}

		matches, globErr := filepath.Glob(file)
		if globErr != nil {
			fmt.Fprintf(os.Stderr, "Error with pattern '%s': %v\n", file, globErr)
			hasErrors = true
			continue
		}
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "No files match pattern: %s\n", file)
			hasErrors = true
			continue
		}

		for _, match := range matches {
			if config.Feed {
				if validateFeed(match, config) {
					hasErrors = true
				}
				continue
			}
			output, failed := validateFile(match, config)
			outputs = append(outputs, output)
			hasErrors = hasErrors || failed
		}
	}

	if config.Output == OutputJSON && !config.Feed {
		jsonOutput, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Println(string(jsonOutput))
	}

	if hasErrors {
		return 1
	}
	return 0
}

func newProcessor(name string, config *Config) *engine.Processor {
	var codec wire.Codec
	switch {
	case config.Format == "xml":
		codec = wire.XML{}
	case config.Format == "json":
		codec = wire.JSON{}
	case strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".ndjson"):
		codec = wire.JSON{}
	default:
		codec = wire.XML{}
	}

	opts := []iso20022.Option{}
	if config.Strict {
		opts = append(opts, iso20022.WithStrictChoices(true))
	}
	return engine.New(codec, opts...)
}

func validateFile(path string, config *Config) (ValidationOutput, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if config.Output == OutputText {
			fmt.Printf("Error reading %s: %v\n", path, err)
		}
		return ValidationOutput{File: path, Error: err.Error()}, true
	}
	return validateData(data, path, config)
}

func validateData(data []byte, name string, config *Config) (ValidationOutput, bool) {
	proc := newProcessor(name, config)
	start := time.Now()

	output := ValidationOutput{File: name}

	doc, err := proc.DecodeBytes(data)
	if err == nil {
		output.Tag = doc.Tag()
		output.Identifier = doc.Identifier()
		err = proc.Validate(doc)
	}
	output.Duration = time.Since(start).Round(time.Microsecond).String()

	if err != nil {
		output.Error = err.Error()
		output.ErrorCode = errorCode(err)
		printTextResult(output, config)
		return output, true
	}

	output.Valid = true
	printTextResult(output, config)
	return output, false
}

func validateFeed(path string, config *Config) bool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return true
	}
	defer f.Close()

	proc := newProcessor(path, config)
	v := stream.NewFeedValidator(proc).WithWorkerCount(config.Workers)
	agg := stream.Aggregate(v.ValidateStreamParallel(context.Background(), f))

	if !config.Quiet || agg.HasFailures() {
		fmt.Printf("== %s ==\n%s\n", path, agg.Summary())
		for index, ferr := range agg.Failures {
			fmt.Printf("  message %d: %v\n", index, ferr)
		}
		for _, perr := range agg.ProcessingErrors {
			fmt.Printf("  feed error: %v\n", perr)
		}
		fmt.Println()
	}
	return agg.HasFailures()
}

func printTextResult(output ValidationOutput, config *Config) {
	if config.Output != OutputText {
		return
	}
	if output.Valid && config.Quiet {
		return
	}

	status := "VALID"
	if !output.Valid {
		status = "INVALID"
	}

	fmt.Printf("== %s ==\n", output.File)
	fmt.Printf("Status: %s\n", status)
	if output.Identifier != "" {
		fmt.Printf("Message: %s (%s)\n", output.Identifier, output.Tag)
	}
	fmt.Printf("Duration: %s\n", output.Duration)
	if output.Error != "" {
		fmt.Printf("Error [%d]: %s\n", output.ErrorCode, output.Error)
	}
	fmt.Println()
}

func errorCode(err error) int {
	return int(iso20022.CodeOf(err))
}
