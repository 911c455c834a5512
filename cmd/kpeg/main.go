// Command kpeg decodes a baseline JFIF JPEG file into a binary PPM image,
// per spec.md §6's CLI surface. Usage:
//
//	kpeg -h
//	kpeg <input.jpg>
//
// The second form writes <input>.ppm alongside the input file and reports
// progress and errors to kpeg.log (internal/kpeglog); the original
// C++ reference this is ported from (original_source/main.cpp) prints the
// same two pieces of information, "generated file" and "check the log
// file", which this command reproduces in Go idiom rather than literally
// translating its strings.
package main

import (
    "flag"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"

    "github.com/jrm-1535/kpeg/internal/kpeglog"
    "github.com/jrm-1535/kpeg/jpeg"
    "github.com/jrm-1535/kpeg/ppm"
)

// printUsage writes the usage text to w. spec.md §6 requires "kpeg -h" to
// print to standard output and exit success; a usage error (no argument)
// prints the same text to standard error instead, matching every other
// diagnostic this command emits.
func printUsage(w io.Writer) {
    fmt.Fprintf(w, "kpeg - a baseline JPEG to PPM decoder\n\n")
    fmt.Fprintf(w, "usage:\n")
    fmt.Fprintf(w, "  kpeg -h            show this help\n")
    fmt.Fprintf(w, "  kpeg <input.jpg>   decode input.jpg into input.ppm\n")
}

func main() {
    help := flag.Bool("h", false, "show usage")
    flag.Usage = func() { printUsage(os.Stderr) }
    flag.Parse()

    if *help {
        printUsage(os.Stdout)
        return
    }
    if flag.NArg() != 1 {
        printUsage(os.Stderr)
        os.Exit(1)
    }

    os.Exit(run(flag.Arg(0)))
}

func run(inPath string) int {
    data, err := os.ReadFile(inPath)
    if err != nil {
        fmt.Fprintf(os.Stderr, "kpeg: cannot read %s: %v\n", inPath, err)
        return resultCodeForIOError()
    }

    img, result, err := jpeg.Decode(data, nil)
    if err != nil {
        fmt.Fprintf(os.Stderr, "kpeg: %v\n", err)
        fmt.Fprintf(os.Stderr, "kpeg: see %s for details\n", kpeglog.FileName)
        return int(result)
    }

    outPath := outputPath(inPath)
    out, err := os.Create(outPath)
    if err != nil {
        fmt.Fprintf(os.Stderr, "kpeg: cannot create %s: %v\n", outPath, err)
        return resultCodeForIOError()
    }
    defer out.Close()

    if err := ppm.Write(out, img); err != nil {
        fmt.Fprintf(os.Stderr, "kpeg: %v\n", err)
        out.Close()
        os.Remove(outPath)
        return int(jpeg.ResultError)
    }

    fmt.Printf("kpeg: generated file %s\n", outPath)
    fmt.Printf("kpeg: complete, see %s for details\n", kpeglog.FileName)
    return int(jpeg.ResultDone)
}

func outputPath(inPath string) string {
    ext := filepath.Ext(inPath)
    base := strings.TrimSuffix(inPath, ext)
    return base + ".ppm"
}

func resultCodeForIOError() int {
    return int(jpeg.ResultError)
}
