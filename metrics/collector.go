package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-bunarr/array"
)

// Source is anything that can report array metrics, such as *array.Array[T]
// or *list.List[T].
type Source interface {
	Metrics() array.Metrics
}

// Collector is a [prometheus.Collector] over named array snapshots.
// All methods are safe for concurrent use.
type Collector struct {
	mu        sync.RWMutex
	snapshots map[string]array.Metrics

	length        *prometheus.Desc
	capacity      *prometheus.Desc
	utilization   *prometheus.Desc
	elementSize   *prometheus.Desc
	reallocations *prometheus.Desc
	finalized     *prometheus.Desc
}

// NewCollector creates an empty Collector whose metric names are prefixed
// with namespace (e.g. "myapp_array_length").
func NewCollector(namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "array", name),
			help,
			[]string{"array"},
			nil,
		)
	}
	return &Collector{
		snapshots:     make(map[string]array.Metrics),
		length:        desc("length", "Live elements"),
		capacity:      desc("capacity", "Addressable element slots"),
		utilization:   desc("utilization_ratio", "Length divided by capacity"),
		elementSize:   desc("element_size_bytes", "Size of one element"),
		reallocations: desc("reallocations_total", "Buffer reallocations"),
		finalized:     desc("finalized_total", "Finalizer calls"),
	}
}

// Record stores m as the latest snapshot for name.
func (c *Collector) Record(name string, m array.Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[name] = m
}

// Observe records src.Metrics() under name. Call it from the goroutine that
// owns src.
func (c *Collector) Observe(name string, src Source) {
	c.Record(name, src.Metrics())
}

// Forget drops the snapshot for name, typically after the array has been
// destroyed.
func (c *Collector) Forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, name)
}

// Names returns the recorded array names in sorted order.
func (c *Collector) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.snapshots))
	for name := range c.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe implements [prometheus.Collector].
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.length
	ch <- c.capacity
	ch <- c.utilization
	ch <- c.elementSize
	ch <- c.reallocations
	ch <- c.finalized
}

// Collect implements [prometheus.Collector].
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, m := range c.snapshots {
		ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(m.Len), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Cap), name)
		ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization, name)
		ch <- prometheus.MustNewConstMetric(c.elementSize, prometheus.GaugeValue, float64(m.ElementSize), name)
		ch <- prometheus.MustNewConstMetric(c.reallocations, prometheus.CounterValue, float64(m.Reallocations), name)
		ch <- prometheus.MustNewConstMetric(c.finalized, prometheus.CounterValue, float64(m.Finalized), name)
	}
}
