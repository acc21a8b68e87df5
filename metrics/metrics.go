// Package metrics exports the work done by lazy sort iterators as Prometheus metrics.
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer)
//	it := lazysort.Sorted(seq, lazysort.WithObserver[int](c.Observer("top_k")))
//
// Every metric is labelled with the sorter name given to Observer, so one Collector can
// serve any number of iterators.
package metrics

import (
	"github.com/davidvella/lazysort"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lazysort"

// Collector holds the metric vectors shared by all observers it hands out.
type Collector struct {
	comparisons     *prometheus.CounterVec
	partitions      *prometheus.CounterVec
	emitted         *prometheus.CounterVec
	nextComparisons *prometheus.HistogramVec
}

// NewCollector creates the metric vectors and registers them with reg. It panics if
// they are already registered, like prometheus.MustRegister.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Total comparator calls made while emitting elements.",
		}, []string{"sorter"}),
		partitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partitions_total",
			Help:      "Total ranges split by the partition engine.",
		}, []string{"sorter"}),
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_emitted_total",
			Help:      "Total elements emitted in sorted order.",
		}, []string{"sorter"}),
		nextComparisons: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "next_comparisons",
			Help:      "Comparator calls needed to emit a single element.",
			// A first element costs about 2n comparisons, later ones are mostly O(1).
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"sorter"}),
	}
	reg.MustRegister(c.comparisons, c.partitions, c.emitted, c.nextComparisons)
	return c
}

// Observer returns a lazysort.Observer recording under the given sorter name.
func (c *Collector) Observer(name string) lazysort.Observer {
	return &observer{
		comparisons:     c.comparisons.WithLabelValues(name),
		partitions:      c.partitions.WithLabelValues(name),
		emitted:         c.emitted.WithLabelValues(name),
		nextComparisons: c.nextComparisons.WithLabelValues(name),
	}
}

type observer struct {
	comparisons, partitions, emitted prometheus.Counter
	nextComparisons                  prometheus.Observer
}

func (o *observer) ObserveNext(step lazysort.Step) {
	o.comparisons.Add(float64(step.Comparisons))
	o.partitions.Add(float64(step.Partitions))
	o.emitted.Inc()
	o.nextComparisons.Observe(float64(step.Comparisons))
}
