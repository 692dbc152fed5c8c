package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"sort"
	"unicode/utf8"

	"github.com/cognicore/retag/pkg/retag"
	"github.com/cognicore/retag/pkg/retag/bytecodec"
	"github.com/cognicore/retag/pkg/retag/config"
	"github.com/cognicore/retag/pkg/retag/report"
	"github.com/cognicore/retag/pkg/retag/sample"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Run config YAML (overrides the other flags)")
		samplePath  = flag.String("sample", "", "Sample file path (required without -config)")
		parseRadix  = flag.Int("parse-radix", 2, "Radix of the sample tokens (2, 8, 10, 16)")
		renderRadix = flag.Int("render-radix", 10, "Radix used to render decoded bytes (2, 8, 10, 16)")
		tagStart    = flag.String("tag-start", "a", "First tag of the alphabet range")
		tagEnd      = flag.String("tag-end", "z", "Last tag of the alphabet range")
		asJSON      = flag.Bool("json", false, "Emit the report as JSON")
	)
	flag.Parse()

	comp, err := resolveSettings(*configPath, *samplePath, *parseRadix, *renderRadix, *tagStart, *tagEnd)
	if err != nil {
		log.Fatal(err)
	}

	text, err := sample.Load(comp.SamplePath)
	if err != nil {
		log.Fatal(err)
	}

	pipe, err := retag.New(retag.Options{
		ParseRadix:  comp.ParseRadix,
		RenderRadix: comp.RenderRadix,
		TagStart:    comp.TagStart,
		TagEnd:      comp.TagEnd,
	})
	if err != nil {
		log.Fatal(err)
	}

	rep, err := pipe.Run(text)
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		return
	}

	printReport(rep, comp.RenderRadix)
}

// resolveSettings merges the config file and the individual flags. When a
// config path is given it wins wholesale; otherwise the flags are validated
// the same way the loader validates the file.
func resolveSettings(configPath, samplePath string, parseRadix, renderRadix int, tagStart, tagEnd string) (*config.Components, error) {
	if configPath != "" {
		loader := &config.Loader{Path: configPath}
		return loader.Load()
	}

	if samplePath == "" {
		return nil, fmt.Errorf("--sample required without --config")
	}

	start, err := firstRune("tag-start", tagStart)
	if err != nil {
		return nil, err
	}
	end, err := firstRune("tag-end", tagEnd)
	if err != nil {
		return nil, err
	}

	return &config.Components{
		SamplePath:  samplePath,
		ParseRadix:  bytecodec.Radix(parseRadix),
		RenderRadix: bytecodec.Radix(renderRadix),
		TagStart:    start,
		TagEnd:      end,
	}, nil
}

func firstRune(flagName, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flagName, s)
	}
	return r, nil
}

func printReport(rep *report.Report, renderRadix bytecodec.Radix) {
	fmt.Printf("\n[run %s]\n", rep.ID)
	fmt.Printf("[sample: %s] -> %s\n\n", renderRadix, rep.Rendered)

	for _, line := range countLines(rep.TokenCounts) {
		fmt.Println(line)
	}

	fmt.Printf("\nfull string: '%s'\n\n", rep.Tagged)

	for _, line := range countLines(rep.TagCounts) {
		fmt.Println(line)
	}

	fmt.Printf("\ndistribution: %v\n", rep.Distribution)
	if rep.Preserved {
		fmt.Println("frequency profile preserved")
	} else {
		fmt.Println("frequency profile NOT preserved")
	}

	fmt.Println("\n[:: done ::]")
}

// countLines formats a count table with sorted keys for stable output.
func countLines(counts map[string]uint32) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%10s -> %d", k, counts[k]))
	}
	return lines
}
