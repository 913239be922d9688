// Package vectorprom exports vector metrics to Prometheus.
package vectorprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector"
)

var (
	sizeDesc = prometheus.NewDesc(
		"vector_size",
		"The current number of live elements.",
		[]string{"vector"},
		nil,
	)
	capacityDesc = prometheus.NewDesc(
		"vector_capacity",
		"The current number of element slots in the buffer.",
		[]string{"vector"},
		nil,
	)
	capacityBytesDesc = prometheus.NewDesc(
		"vector_capacity_bytes",
		"The size of the buffer in bytes.",
		[]string{"vector"},
		nil,
	)
	reallocationsDesc = prometheus.NewDesc(
		"vector_reallocations_total",
		"Total number of buffer reallocations caused by growth.",
		[]string{"vector"},
		nil,
	)
	relocatedDesc = prometheus.NewDesc(
		"vector_relocated_elements_total",
		"Total number of elements moved or copied across reallocations.",
		[]string{"vector"},
		nil,
	)
	utilizationDesc = prometheus.NewDesc(
		"vector_utilization",
		"The ratio of live elements to capacity.",
		[]string{"vector"},
		nil,
	)
)

// Snapshot returns the metrics of one vector. Vectors are not goroutine
// safe, so a Snapshot must take whatever lock guards the vector it reads.
type Snapshot func() vector.Metrics

// Collector is a prometheus.Collector over a set of named vectors.
type Collector struct {
	sources map[string]Snapshot
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{sources: make(map[string]Snapshot)}
}

// Add registers a vector under name, replacing any previous source with the
// same name. It must not be called concurrently with Collect.
func (c *Collector) Add(name string, source Snapshot) {
	c.sources[name] = source
}

// Remove stops exporting the vector registered under name.
func (c *Collector) Remove(name string) {
	delete(c.sources, name)
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- sizeDesc
	descs <- capacityDesc
	descs <- capacityBytesDesc
	descs <- reallocationsDesc
	descs <- relocatedDesc
	descs <- utilizationDesc
}

func (c *Collector) Collect(m chan<- prometheus.Metric) {
	for name, source := range c.sources {
		s := source()
		m <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, float64(s.Size), name)
		m <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(s.Capacity), name)
		m <- prometheus.MustNewConstMetric(capacityBytesDesc, prometheus.GaugeValue, float64(s.CapacityBytes), name)
		m <- prometheus.MustNewConstMetric(reallocationsDesc, prometheus.CounterValue, float64(s.Reallocations), name)
		m <- prometheus.MustNewConstMetric(relocatedDesc, prometheus.CounterValue, float64(s.Relocated), name)
		m <- prometheus.MustNewConstMetric(utilizationDesc, prometheus.GaugeValue, s.Utilization, name)
	}
}
