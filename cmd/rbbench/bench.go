// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/jba/rbmap"
	"github.com/sirupsen/logrus"
)

// A phase is the timing of one bulk operation.
type phase struct {
	name    string
	ops     int
	elapsed time.Duration
}

type result struct {
	seed   uint64
	phases []phase
	size   int // entries left in the final tree
}

// runBench inserts cfg.N random keys with random values into a fresh tree,
// one persistent Insert at a time, then removes cfg.Removals of them.
func runBench(cfg *config) (*result, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	rbmap.Log.SetLevel(level)
	log := rbmap.Log.WithField("cmd", "rbbench")

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))
	res := &result{seed: seed}

	keys := make([]float64, cfg.N)
	t := rbmap.New[float64, float64]()
	start := time.Now()
	for i := range keys {
		keys[i] = r.Float64()
		t = t.Insert(keys[i], r.Float64())
	}
	res.phases = append(res.phases, phase{"insert", cfg.N, time.Since(start)})
	log.WithFields(logrus.Fields{"n": cfg.N, "elapsed": res.phases[0].elapsed}).Info("inserted")
	if err := check(cfg, t, "insert"); err != nil {
		return nil, err
	}

	if k := int(cfg.Removals * float64(cfg.N)); k > 0 {
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		start = time.Now()
		for _, key := range keys[:k] {
			t = t.Remove(key)
		}
		res.phases = append(res.phases, phase{"remove", k, time.Since(start)})
		log.WithFields(logrus.Fields{"n": k, "elapsed": res.phases[1].elapsed}).Info("removed")
		if err := check(cfg, t, "remove"); err != nil {
			return nil, err
		}
	}
	res.size = t.Len()
	return res, nil
}

func check(cfg *config, t *rbmap.Tree[float64, float64], after string) error {
	if !cfg.Check {
		return nil
	}
	return errors.Wrapf(t.Check(), "after %s", after)
}

func (r *result) print(w io.Writer) {
	fmt.Fprintf(w, "seed %d\n", r.seed)
	for _, p := range r.phases {
		rate := float64(p.ops)
		if p.elapsed > 0 {
			rate /= p.elapsed.Seconds()
		}
		fmt.Fprintf(w, "%-6s %s ops in %v (%s ops/s)\n",
			p.name, humanize.Comma(int64(p.ops)), p.elapsed.Round(time.Microsecond), humanize.Commaf(float64(int64(rate))))
	}
	fmt.Fprintf(w, "final size %s\n", humanize.Comma(int64(r.size)))
}
