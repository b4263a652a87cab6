package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AuthRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staffdesk", Name: "api_key_auth_total", Help: "API key authentication attempts by outcome."},
		[]string{"outcome"},
	)
	KeysIssued = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "staffdesk", Name: "api_keys_issued_total", Help: "Number of API keys issued."},
	)
	EmployeeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staffdesk", Name: "employee_operations_total", Help: "Employee CRUD operations by kind."},
		[]string{"op"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(AuthRequests)
	reg.MustRegister(KeysIssued)
	reg.MustRegister(EmployeeOps)
}
