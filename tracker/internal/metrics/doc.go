// Package metrics counts session activity on a private Prometheus registry
// and renders it in the Prometheus text exposition format.
//
// There is no HTTP endpoint. The binary writes WriteText output to the file
// named by metrics.output at logout.
package metrics
