// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/archeat/internal/code"
	"github.com/retroenv/archeat/internal/engine"
	"github.com/retroenv/archeat/internal/loader"
	"github.com/retroenv/archeat/internal/memory"
	"github.com/retroenv/archeat/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Section names of the game settings file format.
const (
	codeSection    = "ActionReplay"
	enabledSection = "ActionReplay_Enabled"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	codes, err := loadCodes(logger, opts)
	if err != nil {
		return fmt.Errorf("loading codes: %w", err)
	}
	logger.Info("Codes loaded", log.Int("count", len(codes)))

	if opts.Apply == "" {
		return listCodes(opts, codes)
	}
	return applyCodes(ctx, logger, opts, codes)
}

// GenerateOutputFilename generates the output filename for a given image file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".out"
}

// loadCodes reads the global and local code files and decodes their code
// sections. An -enable option replaces the enabled sections of both files.
func loadCodes(logger *log.Logger, opts options.Program) ([]code.Code, error) {
	globalCode, globalEnabled, err := readCodeFile(opts.Global)
	if err != nil {
		return nil, err
	}
	localCode, localEnabled, err := readCodeFile(opts.Local)
	if err != nil {
		return nil, err
	}

	var enabled []string
	if opts.Enable != "" {
		for _, name := range strings.Split(opts.Enable, ",") {
			enabled = append(enabled, "$"+strings.TrimSpace(name))
		}
	} else {
		enabled = append(globalEnabled, localEnabled...)
	}

	ldr := loader.New(logger, loader.NoDecrypt)
	return ldr.Parse(globalCode, localCode, enabled), nil
}

// readCodeFile scans a game settings file and collects the lines of the code
// and enabled sections. Lines outside both sections are ignored.
func readCodeFile(name string) ([]string, []string, error) {
	if name == "" {
		return nil, nil, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	var codeLines, enabledLines []string
	section := ""

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case codeSection:
			codeLines = append(codeLines, line)
		case enabledSection:
			enabledLines = append(enabledLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading file %s: %w", name, err)
	}

	return codeLines, enabledLines, nil
}

// listCodes writes a readable per op listing of all decoded codes, active
// ones marked with a star.
func listCodes(opts options.Program, codes []code.Code) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	for _, c := range codes {
		marker := " "
		if c.Active {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s %s\n", marker, c.Name)
		for _, op := range c.Ops {
			fmt.Fprintf(writer, "    %08X %08X  %s\n", op.Addr, op.Value, op.Disassemble())
		}
		fmt.Fprintln(writer)
	}
	return nil
}

// applyCodes runs the active codes against a raw memory image and writes the
// mutated image back out.
func applyCodes(ctx context.Context, logger *log.Logger, opts options.Program, codes []code.Code) error {
	image, err := os.ReadFile(opts.Apply)
	if err != nil {
		return fmt.Errorf("reading memory image %s: %w", opts.Apply, err)
	}

	ram := memory.NewRAMWithData(opts.Base, image)
	eng := engine.New(engine.Options{EnableCheats: true}, ram, logger, nil)
	eng.ApplyCodes(codes)

	for i := 0; i < opts.Passes; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		eng.RunAllActive()
	}

	output := opts.Output
	if output == "" {
		output = GenerateOutputFilename(opts.Apply)
	}
	if err := os.WriteFile(output, ram.Data(), 0o644); err != nil {
		return fmt.Errorf("writing memory image %s: %w", output, err)
	}

	logger.Info("Applied codes",
		log.Int("active", len(eng.ActiveCodes())),
		log.Int("passes", opts.Passes),
		log.String("output", output))
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("archeat", log.String("version", buildinfo.Version(version, commit, date)))
}
