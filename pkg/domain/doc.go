/*
Package domain contains the core types of the Arbor generation engine.

It defines the tree that generation builds and the rule shapes that drive it.
The package is kept pure: no I/O, no logging and no persistence.

# Key Entities

  - Node: a candidate payload with its status (ended, rejected) and ordered children.
  - GrowRule: proposes successor payloads for a payload and its history.
  - CutRule: vetoes a candidate with one or more notes.
  - EndFunc: the optional termination predicate.
  - Rejection: the reasons recorded on a vetoed node.
  - LifecycleHooks: callbacks observing a build.
*/
package domain
