// SPDX-License-Identifier: EPL-2.0

// Command audmix mixes a CSV event list into a single WAV file.
//
// Each CSV row places one clip: start time in milliseconds, volume,
// stereo pan in [-1, 1] and the clip's file path.
//
//	audmix -i events.csv -o out.wav [-q quality]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/encode"
	"github.com/ik5/audmix/mix"
)

func main() {
	input := flag.String("i", "", "input CSV event file")
	output := flag.String("o", "", "output audio file")
	quality := flag.Float64("q", 0.7, "output quality in [0, 1]")
	flag.Parse()

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("Input Path: %s\n", *input)
	fmt.Printf("Output Path: %s\n", *output)
	fmt.Printf("Output Quality: %g\n", *quality)

	events, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open events: %s", err)
	}
	defer events.Close()

	cache := mix.NewFileCache(audmix.DefaultRegistry(), mix.ProjectRate)

	data, err := audmix.Mixdown(events, cache, encode.WAV16{}, *quality)
	if err != nil {
		log.Fatalf("mixdown: %s", err)
	}

	fmt.Printf("exporting to %s\n", *output)

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write output: %s", err)
	}
}
