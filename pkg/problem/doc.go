// Package problem loads declarative generation jobs and compiles them into rule sets
// using the built-in integer rules of package registry.
package problem
