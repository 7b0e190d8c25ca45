package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new in-memory deduper", t, func() {
		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should start empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording session ids", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the id is new", func() {
				seen := d.SeenAndRecord(context.Background(), "session-1")

				Convey("Then it should not be reported as seen", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the id repeats", func() {
				So(d.SeenAndRecord(context.Background(), "session-1"), ShouldBeFalse)
				So(d.SeenAndRecord(context.Background(), "session-1"), ShouldBeTrue)

				Convey("Then the size should not grow", func() {
					So(d.Size(), ShouldEqual, 1)
				})
			})
		})

		Convey("When unrecording an id", func() {
			d := dedupe.NewInMemoryDeduper()
			So(d.SeenAndRecord(context.Background(), "session-1"), ShouldBeFalse)
			d.Unrecord(context.Background(), "session-1")

			Convey("Then the id should be recordable again", func() {
				So(d.Size(), ShouldEqual, 0)
				So(d.SeenAndRecord(context.Background(), "session-1"), ShouldBeFalse)
			})

			Convey("And unrecording an unknown id should be a no-op", func() {
				d.Unrecord(context.Background(), "never-seen")
				So(d.Size(), ShouldBeGreaterThanOrEqualTo, 0)
			})
		})

		Convey("When the deduper is bounded", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

			for i := 0; i < 3; i++ {
				So(d.SeenAndRecord(context.Background(), fmt.Sprintf("session-%d", i)), ShouldBeFalse)
			}

			Convey("Then adding one more should evict the oldest", func() {
				So(d.SeenAndRecord(context.Background(), "session-3"), ShouldBeFalse)
				So(d.Size(), ShouldEqual, 3)

				// The oldest id is forgotten and can be recorded again.
				So(d.SeenAndRecord(context.Background(), "session-0"), ShouldBeFalse)
			})

			Convey("And recent ids should still be deduplicated", func() {
				So(d.SeenAndRecord(context.Background(), "session-2"), ShouldBeTrue)
			})
		})

		Convey("When the deduper is unbounded", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))

			for i := 0; i < 1000; i++ {
				So(d.SeenAndRecord(context.Background(), fmt.Sprintf("session-%d", i)), ShouldBeFalse)
			}

			Convey("Then nothing should be evicted", func() {
				So(d.Size(), ShouldEqual, 1000)
				So(d.SeenAndRecord(context.Background(), "session-0"), ShouldBeTrue)
			})
		})
	})
}

func TestInMemoryDeduperConcurrency(t *testing.T) {
	Convey("Given concurrent access to a deduper", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(10000))

		var wg sync.WaitGroup
		const goroutines = 10
		const perGoroutine = 100

		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := 0; i < perGoroutine; i++ {
					d.SeenAndRecord(context.Background(), fmt.Sprintf("g%d-session-%d", g, i))
				}
			}(g)
		}
		wg.Wait()

		Convey("Then every distinct id should be recorded exactly once", func() {
			So(d.Size(), ShouldEqual, goroutines*perGoroutine)
		})

		Convey("And a shared id recorded by many goroutines should count once", func() {
			var firstRecords int64
			var mu sync.Mutex
			var wg2 sync.WaitGroup
			for g := 0; g < goroutines; g++ {
				wg2.Add(1)
				go func() {
					defer wg2.Done()
					if !d.SeenAndRecord(context.Background(), "shared-session") {
						mu.Lock()
						firstRecords++
						mu.Unlock()
					}
				}()
			}
			wg2.Wait()
			So(firstRecords, ShouldEqual, 1)
		})
	})
}
