package runestream_test

import (
	"fmt"
	"slices"

	"github.com/robinvdvleuten/runestream"
)

// Drain a reader one line at a time, aggregating each line into a Text that
// carries its source span.
func ExampleReader_ReadLine() {
	r := runestream.NewStringReader("hello\nwörld")
	defer r.Close()

	for !r.EOF() {
		line := slices.Collect(r.ReadLine())
		text, err := runestream.NewText(line)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%q spans %s to %s\n", text.String(), text.From(), text.To())
	}

	// Output:
	// "hello\n" spans 0:0 to 0:5
	// "wörld" spans 1:0 to 1:4
}

func ExampleChar() {
	r := runestream.NewStringReader("Go")
	defer r.Close()

	c, _ := r.Read()
	fmt.Println(c.Is('G'), c.IsUpper(), c.ToLower())

	// Output:
	// true true 'g'@0:0
}
