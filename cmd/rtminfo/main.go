// Command rtminfo prints the math kernel dispatch level selected for the
// current host.
//
// Usage:
//
//	rtminfo [flags]
//
// Examples:
//
//	rtminfo
//	rtminfo -demo
//	RTM_NO_SIMD=1 rtminfo
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/ajroetker/go-rtm/rtm"
)

func main() {
	demo := flag.Bool("demo", false, "run a short per-lane sanity pass and print the results")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("arch:           %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("dispatch level: %s\n", rtm.CurrentName())
	fmt.Printf("RTM_NO_SIMD:    %v\n", rtm.NoSimdEnv())

	if *demo {
		runDemo()
	}
}

func runDemo() {
	fmt.Println()

	a := rtm.Set(1.0, 2.0, 3.0, 4.0)
	b := rtm.Set(5.0, 6.0, 7.0, 8.0)

	fmt.Printf("a              = %v\n", a)
	fmt.Printf("b              = %v\n", b)
	fmt.Printf("a + b          = %v\n", rtm.Add(a, b))
	fmt.Printf("a * b          = %v\n", rtm.Mul(a, b))
	fmt.Printf("dot(a, b)      = %v\n", rtm.Dot(a, b))
	fmt.Printf("cross3(a, b)   = %v\n", rtm.Cross3(a, b))
	fmt.Printf("normalize3(a)  = %v\n", rtm.Normalize3(a))
	fmt.Printf("lerp(a, b, .5) = %v\n", rtm.Lerp(a, b, 0.5))

	angles := rtm.Set(0.0, math.Pi/6, math.Pi/4, math.Pi/2)
	fmt.Printf("sin            = %v\n", rtm.Sin(angles))
	fmt.Printf("cos            = %v\n", rtm.Cos(angles))

	mixed := rtm.Set(-1.5, 2.5, -0.5, 3.5)
	fmt.Printf("roundSym       = %v\n", rtm.RoundSymmetric(mixed))
	fmt.Printf("roundBankers   = %v\n", rtm.RoundBankers(mixed))
}
