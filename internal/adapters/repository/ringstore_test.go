package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	repository "github.com/Ayush-07-Mishra/Vasu-Vue/internal/adapters/repository"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func session(id string, samples int) model.Session {
	return model.Session{
		SessionID:   id,
		SampleCount: samples,
		ReceivedAt:  time.Now(),
	}
}

func TestRingStore(t *testing.T) {
	Convey("Given a new ring store", t, func() {
		ctx := context.Background()

		Convey("When created with defaults", func() {
			s := repository.NewRingStore(ctx)

			Convey("Then it should start empty", func() {
				So(s.Count(ctx), ShouldEqual, 0)
				recent, err := s.Recent(ctx, 10)
				So(err, ShouldBeNil)
				So(recent, ShouldBeEmpty)
			})
		})

		Convey("When appending sessions", func() {
			s := repository.NewRingStore(ctx, repository.WithCapacity(10))

			So(s.Append(ctx, session("a", 100)), ShouldBeNil)
			So(s.Append(ctx, session("b", 200)), ShouldBeNil)
			So(s.Append(ctx, session("c", 300)), ShouldBeNil)

			Convey("Then the count should track live entries", func() {
				So(s.Count(ctx), ShouldEqual, 3)
			})

			Convey("And Recent should return newest first", func() {
				recent, err := s.Recent(ctx, 2)
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 2)
				So(recent[0].SessionID, ShouldEqual, "c")
				So(recent[1].SessionID, ShouldEqual, "b")
			})

			Convey("And asking for more than retained should cap at the count", func() {
				recent, err := s.Recent(ctx, 100)
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 3)
			})

			Convey("And a non-positive limit should be rejected", func() {
				_, err := s.Recent(ctx, 0)
				So(err, ShouldEqual, repository.ErrInvalidLimit)
			})
		})

		Convey("When the store wraps around", func() {
			s := repository.NewRingStore(ctx, repository.WithCapacity(3))

			for i := 0; i < 5; i++ {
				So(s.Append(ctx, session(fmt.Sprintf("s-%d", i), i*100)), ShouldBeNil)
			}

			Convey("Then only the newest capacity-many sessions remain", func() {
				So(s.Count(ctx), ShouldEqual, 3)
				recent, err := s.Recent(ctx, 3)
				So(err, ShouldBeNil)
				So(recent[0].SessionID, ShouldEqual, "s-4")
				So(recent[1].SessionID, ShouldEqual, "s-3")
				So(recent[2].SessionID, ShouldEqual, "s-2")
			})
		})

		Convey("When the context is cancelled", func() {
			s := repository.NewRingStore(ctx)
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			Convey("Then Append should fail", func() {
				So(s.Append(cancelled, session("x", 1)), ShouldNotBeNil)
				So(s.Count(ctx), ShouldEqual, 0)
			})
		})
	})
}

func TestRingStoreConcurrency(t *testing.T) {
	Convey("Given concurrent writers and readers", t, func() {
		ctx := context.Background()
		s := repository.NewRingStore(ctx, repository.WithCapacity(100))

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					_ = s.Append(ctx, session(fmt.Sprintf("g%d-%d", g, i), i))
					_, _ = s.Recent(ctx, 10)
				}
			}(g)
		}
		wg.Wait()

		Convey("Then the store should retain exactly its capacity", func() {
			So(s.Count(ctx), ShouldEqual, 100)
			recent, err := s.Recent(ctx, 100)
			So(err, ShouldBeNil)
			So(recent, ShouldHaveLength, 100)
		})
	})
}
