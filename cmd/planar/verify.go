package main

import (
	"fmt"
	"sort"

	"github.com/cenkalti/planar/geom"
	"github.com/cenkalti/planar/internal/pointset"
	"github.com/cenkalti/planar/internal/randpoint"
	"github.com/urfave/cli"
)

type mismatchError struct {
	failed, total int
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("%d of %d checks failed", e.failed, e.total)
}

func (s *session) handleVerify(c *cli.Context) error {
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	queries := s.cfg.VerifyQueries
	if c.IsSet("queries") {
		queries = c.Int("queries")
	}

	points := idx.Points()
	ref := pointset.New()
	for _, p := range points {
		ref.Insert(p)
	}
	if len(points) == 0 {
		_, err = fmt.Fprintln(c.App.Writer, "no points to verify")
		return err
	}

	// Queries are drawn from the bounding box of the points, slightly enlarged.
	bbox := geom.MustRect(points[0].X, points[0].Y, points[0].X, points[0].Y)
	for _, p := range points[1:] {
		bbox = bbox.Extend(p)
	}
	margin := 0.1 * (bbox.Width() + bbox.Height() + 1)
	bbox = geom.MustRect(bbox.XMin()-margin, bbox.YMin()-margin, bbox.XMax()+margin, bbox.YMax()+margin)

	var total, failed int
	check := func(ok bool, format string, args ...any) {
		total++
		if !ok {
			failed++
			log.Errorf(format, args...)
		}
	}

	check(idx.Len() == ref.Len(), "size: tree has %d points, reference has %d", idx.Len(), ref.Len())
	for _, p := range points {
		check(ref.Contains(p), "contains %s: point walked from tree is not in reference", p)
	}

	g := randpoint.New(s.cfg.Seed)
	for i := 0; i < queries; i++ {
		r := g.Rect(bbox)
		got := idx.Range(r)
		sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
		want := ref.Range(r)
		check(equalPoints(got, want), "range %s: tree returned %d points, reference %d", r, len(got), len(want))

		q := g.Point(bbox)
		p, ok := idx.Nearest(q)
		w, _ := ref.Nearest(q)
		check(ok && p.DistanceSquaredTo(q) == w.DistanceSquaredTo(q), "nearest %s: tree returned %s, reference %s", q, p, w)

		check(idx.Contains(q) == ref.Contains(q), "contains %s", q)
	}

	_, err = fmt.Fprintf(c.App.Writer, "%d checks, %d failed\n", total, failed)
	if err != nil {
		return err
	}
	if failed > 0 {
		return &mismatchError{failed: failed, total: total}
	}
	return nil
}

func equalPoints(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
