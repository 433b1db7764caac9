package main

import (
	"flag"
	"fmt"
	"os"

	"defg-support/internal/clock"
	"defg-support/internal/pointfile"
	"defg-support/internal/pointset"
)

func main() {
	encoding := flag.String("encoding", "", "Text encoding of BOM-less point files")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-encoding name] <file>...")
		os.Exit(2)
	}

	status := 0
	var points pointset.Collector
	for _, path := range flag.Args() {
		points.Reset()

		start := clock.Seconds()
		n := pointfile.LoadWith(path, &points, pointfile.Options{Encoding: *encoding})
		elapsed := clock.Since(start)

		fmt.Printf("%s\n", path)
		fmt.Printf("  Points: %d (%.3fs)\n", n, elapsed)

		b, ok := points.Bounds()
		if !ok {
			fmt.Println("  No points loaded")
			status = 1
			continue
		}
		size := b.Size()
		c := points.Centroid()
		fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
			b.Min.X(), b.Max.X(), b.Min.Y(), b.Max.Y(), b.Min.Z(), b.Max.Z())
		fmt.Printf("  Size: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
		fmt.Printf("  Diagonal: %.3f\n", b.Diagonal())
		fmt.Printf("  Centroid: (%.3f, %.3f, %.3f)\n", c.X(), c.Y(), c.Z())
	}
	os.Exit(status)
}
