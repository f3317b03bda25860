package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "The go-knownbits Authors."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-knownbits")

	spec := goldenSpec{}

	for width := uint(1); width <= 3; width++ {
		spec.Widths = append(spec.Widths, goldenWidth{
			Width:    width,
			Patterns: patterns(width),
		})
	}

	assertNoError(bgen.Generate(spec, "golden", "templates",
		bavard.Entry{
			File:      "../../pkg/eval/golden/golden.go",
			Templates: []string{"golden.go.tmpl"},
		},
	), "for golden state tables")

	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../pkg/eval/golden")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../pkg/eval/golden")
}

// Patterns tabulates every width-bit abstract word in canonical enumeration
// order: words are counted in base 3 across their bits with the least
// significant bit as the fastest digit, and digits ordered 0, 1, ?.
func patterns(width uint) []string {
	var (
		digits = []byte{'0', '1', '?'}
		count  = uint64(1)
	)

	for i := uint(0); i < width; i++ {
		count *= 3
	}

	states := make([]string, count)

	for i := uint64(0); i < count; i++ {
		var (
			pattern = make([]byte, width)
			n       = i
		)
		// Least significant bit is the fastest digit, but patterns render
		// most significant first.
		for j := uint(0); j < width; j++ {
			pattern[width-1-j] = digits[n%3]
			n /= 3
		}

		states[i] = string(pattern)
	}

	return states
}

type goldenSpec struct {
	Widths []goldenWidth
}

type goldenWidth struct {
	Width    uint
	Patterns []string
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
