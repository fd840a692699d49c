// Package server hosts the Fiber HTTP service and request middleware chain.
// It assembles the application around a narrow RelayHandler interface so the
// relay implementation (and test fakes) can be injected, tags every request
// with an ID for log correlation, and owns the shared upstream http.Client
// with its timeout and redirect-cap policy. Keep exports narrow and accept
// explicit dependencies.
package server
