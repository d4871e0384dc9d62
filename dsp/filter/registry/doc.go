// Package registry builds filters by kind name. It backs configuration-driven
// callers such as the smooth command and per-channel banks.
//
// A [Spec] carries the parameters of every kind; [New] reads the ones its
// kind needs and ignores the rest. [DefaultSpec] fills in values suited to a
// 100 Hz sensor loop.
package registry
