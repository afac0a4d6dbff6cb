package vector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reallocations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "vector_reallocations_total",
		Help: "The total number of times a vector buffer was reallocated to grow",
	}, []string{"vector"})

	elementsCopied = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "vector_elements_copied_total",
		Help: "The total number of elements copied into a new buffer during growth",
	}, []string{"vector"})

	vectorSize = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "vector_size",
		Help: "The number of live elements in the vector",
	}, []string{"vector"})

	vectorCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "vector_capacity",
		Help: "The number of allocated slots in the vector",
	}, []string{"vector"})
)

func (v *Vector[T]) recordGrowth(copied int) {
	if v.name == "" {
		return
	}

	reallocations.WithLabelValues(v.name).Inc()
	elementsCopied.WithLabelValues(v.name).Add(float64(copied))
}

func (v *Vector[T]) recordShape() {
	if v.name == "" {
		return
	}

	vectorSize.WithLabelValues(v.name).Set(float64(v.size))
	vectorCapacity.WithLabelValues(v.name).Set(float64(len(v.elements)))
}
