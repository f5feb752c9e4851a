package checkout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultPaid     = "paid"
	resultDeclined = "declined"

	metricsPrefix = "checkout_"
)

var (
	CheckoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_total",
			Help: "Total number of checkouts by result",
		},
		[]string{"result"},
	)

	CheckoutNotificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_notifications_total",
			Help: "Total number of notifications sent after successful payment",
		},
	)
)

// CollectCounters читает счетчики checkout_* из gatherer.
// Ключ имеет вид name{label="value",...}, как в text exposition format.
func CollectCounters(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	counters := make(map[string]float64)
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, metricsPrefix) {
			continue
		}

		for _, metric := range family.GetMetric() {
			counter := metric.GetCounter()
			if counter == nil {
				continue
			}

			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}
			sort.Strings(labels)

			key := name
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			counters[key] = counter.GetValue()
		}
	}

	return counters, nil
}
