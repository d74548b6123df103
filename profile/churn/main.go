// Profiling:
// go build ./profile/churn
// ./churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"log"

	"github.com/TheBitDrifter/roster"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(rounds, iters, entities); err != nil {
		log.Fatal(err)
	}
	p.Stop()
}

func run(rounds, iters, numEntities int) error {
	c1 := roster.FactoryNewComponent[comp1]()
	c2 := roster.FactoryNewComponent[comp2]()
	ctl := roster.Factory.NewController()

	for range rounds {
		if err := ctl.Init(numEntities, false); err != nil {
			return err
		}
		if err := ctl.RegisterComponents(c1, c2); err != nil {
			return err
		}
		query := roster.Factory.NewQuery().And(c1, c2)

		for range iters {
			for range numEntities {
				e, err := ctl.NextEntityIndex()
				if err != nil {
					return err
				}
				if err := c1.Set(ctl, e, comp1{V: 1, W: 1}); err != nil {
					return err
				}
				if err := c2.Set(ctl, e, comp2{V: 2, W: 2}); err != nil {
					return err
				}
			}
			cursor := roster.Factory.NewCursor(query, ctl)
			for cursor.Next() {
				a, b := c1.GetFromCursor(cursor), c2.GetFromCursor(cursor)
				a.V += b.V
				a.W += b.W
				if err := ctl.EnqueueFreeEntityIndex(cursor.Entity()); err != nil {
					return err
				}
			}
			if err := cursor.Err(); err != nil {
				return err
			}
		}
	}
	ctl.Reset()
	return nil
}
