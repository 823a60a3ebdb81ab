// Package fault declares the closed failure classifications carried by
// outcomes. Remote covers network interactions, Local covers on-device
// operations. The Fault interface is sealed: the set cannot grow outside
// this package.
package fault
