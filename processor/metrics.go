package processor

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts processor activity.
type Metrics struct {
	DatasetsParsed     prometheus.Counter
	DatasetsSerialized prometheus.Counter
	ParseFailures      prometheus.Counter
}

// NewMetrics builds the counter set and registers it when a registerer
// is given. A nil registerer yields working but unexported counters,
// which keeps the metrics optional for library callers.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DatasetsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dcat_datasets_parsed_total",
			Help: "Total number of dataset nodes parsed from RDF documents",
		}),
		DatasetsSerialized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dcat_datasets_serialized_total",
			Help: "Total number of dataset records serialized to RDF",
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dcat_parse_failures_total",
			Help: "Total number of dataset nodes a profile failed on",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.DatasetsParsed, m.DatasetsSerialized, m.ParseFailures)
	}
	return m
}
