package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	clog "github.com/cenkalti/log"
	"github.com/cenkalti/planar/geom"
	"github.com/cenkalti/planar/internal/config"
	"github.com/cenkalti/planar/internal/jsonutil"
	"github.com/cenkalti/planar/internal/logger"
	"github.com/cenkalti/planar/internal/pointindex"
	"github.com/cenkalti/planar/internal/pointio"
	"github.com/cenkalti/planar/internal/randpoint"
	"github.com/cenkalti/planar/kdtree"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli"
)

// Version is set at build time.
var Version = "0.0.0"

var log = logger.New("planar")

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		clog.Fatal(err)
	}
}

type session struct {
	cfg   *config.Config
	index *pointindex.Index
}

func newApp() *cli.App {
	s := new(session)
	app := cli.NewApp()
	app.Name = "planar"
	app.Usage = "Query a set of 2-D points with a 2-d tree"
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "read config from `FILE`",
			Value: "~/.planar.yaml",
		},
		cli.StringFlag{
			Name:  "points, p",
			Usage: "load points from `FILE`, overrides points_file in config",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "enable debug log",
		},
	}
	app.Before = s.before
	app.Commands = []cli.Command{
		{
			Name:            "contains",
			Usage:           "check if a point is in the set",
			ArgsUsage:       "X Y",
			SkipFlagParsing: true,
			Action:          s.handleContains,
		},
		{
			Name:            "range",
			Usage:           "list points inside a rectangle",
			ArgsUsage:       "XMIN YMIN XMAX YMAX",
			SkipFlagParsing: true,
			Action:          s.handleRange,
		},
		{
			Name:            "nearest",
			Usage:           "find the point closest to a query point",
			ArgsUsage:       "X Y",
			SkipFlagParsing: true,
			Action:          s.handleNearest,
		},
		{
			Name:   "stats",
			Usage:  "show index statistics",
			Action: s.handleStats,
		},
		{
			Name:   "walk",
			Usage:  "print every node of the tree with its region",
			Action: s.handleWalk,
		},
		{
			Name:  "verify",
			Usage: "compare tree answers with an exhaustive search",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "queries, n",
					Usage: "number of random queries, overrides verify_queries in config",
				},
			},
			Action: s.handleVerify,
		},
		{
			Name:  "gen",
			Usage: "write random points inside the universe",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Usage: "number of points, overrides gen_count in config",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed, overrides seed in config",
				},
			},
			Action: s.handleGen,
		},
	}
	return app
}

func (s *session) before(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.GlobalString("config"))
	if err != nil {
		return err
	}
	if p := c.GlobalString("points"); p != "" {
		cfg.PointsFile = p
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if c.GlobalBool("debug") {
		level = clog.DEBUG
	}
	logger.SetLevel(level)
	s.cfg = cfg
	return nil
}

// loadIndex reads the points file into a new index.
func (s *session) loadIndex() (*pointindex.Index, error) {
	if s.index != nil {
		return s.index, nil
	}
	universe, err := s.cfg.Universe.Rect()
	if err != nil {
		return nil, err
	}
	filename, err := homedir.Expand(s.cfg.PointsFile)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx := pointindex.New(universe)
	if _, err = idx.Load(f); err != nil {
		return nil, fmt.Errorf("cannot load points from %s: %w", filename, err)
	}
	log.Debugf("Index %s has %d points.", idx.ID(), idx.Len())
	s.index = idx
	return idx, nil
}

func (s *session) handleContains(c *cli.Context) error {
	p, err := pointio.ParsePoint(c.Args())
	if err != nil {
		return err
	}
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, idx.Contains(p))
	return err
}

func (s *session) handleRange(c *cli.Context) error {
	r, err := pointio.ParseRect(c.Args())
	if err != nil {
		return err
	}
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	points := idx.Range(r)
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	return pointio.Write(c.App.Writer, points)
}

func (s *session) handleNearest(c *cli.Context) error {
	q, err := pointio.ParsePoint(c.Args())
	if err != nil {
		return err
	}
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	p, ok := idx.Nearest(q)
	if !ok {
		return errors.New("no points")
	}
	return pointio.Write(c.App.Writer, []geom.Point{p})
}

func (s *session) handleStats(c *cli.Context) error {
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	b, err := jsonutil.MarshalCompactPretty(idx.Stats())
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(b)
	return err
}

func (s *session) handleWalk(c *cli.Context) error {
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	idx.Walk(func(n kdtree.NodeInfo) bool {
		_, err = fmt.Fprintf(c.App.Writer, "%d %-10s %s %s\n", n.Depth, n.Orientation, n.Point, n.Region)
		return err == nil
	})
	return err
}

func (s *session) handleGen(c *cli.Context) error {
	n := s.cfg.GenCount
	if c.IsSet("count") {
		n = c.Int("count")
	}
	seed := s.cfg.Seed
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	if s.cfg.Universe.Unbounded {
		return errors.New("cannot generate points in an unbounded universe")
	}
	universe, err := s.cfg.Universe.Rect()
	if err != nil {
		return err
	}
	return pointio.Write(c.App.Writer, randpoint.New(seed).Points(n, universe))
}
