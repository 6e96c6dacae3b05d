// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audmix/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("audio.aif")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := aiff.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}
