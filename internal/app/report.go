package app

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/backsync/internal/core/domain"
)

// units are the decimal units of the size report.
var units = []struct {
	name    string
	divisor float64
}{
	{"Bytes", 1},
	{"KB", 1e3},
	{"MB", 1e6},
	{"GB", 1e9},
}

// renderReport writes the four-unit total followed by the ranked buckets,
// one line per path. The rank column is as wide as largest, the requested
// listing length.
func renderReport(w io.Writer, total int64, largest int, buckets []domain.SizeBucket) error {
	var b strings.Builder

	for _, u := range units {
		fmt.Fprintf(&b, "%20s %s\n", humanize.Comma(roundDiv(total, u.divisor)), u.name)
	}

	pathPad := 0
	for _, bucket := range buckets {
		for _, p := range bucket.Paths {
			pathPad = max(pathPad, len(p))
		}
	}

	posPad := len(strconv.Itoa(largest))
	rank := 0
	for _, bucket := range buckets {
		mb := humanize.Comma(roundDiv(bucket.Size, 1e6))
		for _, p := range bucket.Paths {
			rank++
			fmt.Fprintf(&b, "%*d. %-*s %s MB\n", posPad, rank, pathPad, p, mb)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderDelta writes how cur differs from the previous scan.
func renderDelta(w io.Writer, prev, cur *domain.ScanRecord) error {
	diff := cur.TotalBytes - prev.TotalBytes
	sign := "+"
	if diff < 0 {
		sign = "-"
		diff = -diff
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nSince last scan %s: %s%s, %+d files\n",
		humanize.RelTime(prev.ScannedAt, cur.ScannedAt, "ago", "later"),
		sign, humanize.Bytes(uint64(diff)), //nolint:gosec // diff is non-negative
		cur.IncludedFiles-prev.IncludedFiles)

	if prev.Fingerprint != cur.Fingerprint {
		b.WriteString("Exclusion set changed since last scan\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// roundDiv divides and rounds half to even.
func roundDiv(n int64, divisor float64) int64 {
	return int64(math.RoundToEven(float64(n) / divisor))
}
