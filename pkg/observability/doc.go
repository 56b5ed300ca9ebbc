/*
Package observability provides tools for monitoring the Arbor engine.

It turns lifecycle hooks into Prometheus counters and structured debug traces.
Several hook sets can be combined with domain.ComposeHooks.
*/
package observability
