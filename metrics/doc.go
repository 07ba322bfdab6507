// Package metrics exports array statistics to Prometheus.
//
// Arrays are not safe for concurrent use, so the collector never reads an
// array itself. The goroutine that owns an array pushes snapshots with
// [Collector.Observe] or [Collector.Record]; scrapes read the latest
// snapshot of each name.
//
//	c := metrics.NewCollector("myapp")
//	prometheus.MustRegister(c)
//
//	points := array.New[point](64, nil)
//	// ... mutate points ...
//	c.Observe("points", points)
package metrics
