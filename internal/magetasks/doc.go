// Package magetasks provides the build tasks used by the Magefile.
//
// Tasks report progress through the same diagnostic console the
// cargo-yaml binary uses, so build output reads like cargo's.
package magetasks
