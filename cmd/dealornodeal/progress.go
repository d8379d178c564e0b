package main

import (
	"fmt"
	"io"
)

const progressDots = 40

// dotProgress prints a row of dots as games complete, one dot per 2.5%.
func dotProgress(w io.Writer) func(played, total int) {
	printed := 0
	return func(played, total int) {
		target := played * progressDots / total
		for ; printed < target; printed++ {
			fmt.Fprint(w, ".")
		}
		if played >= total {
			fmt.Fprintln(w)
		}
	}
}
