/*
Package ports defines the driven ports (interfaces) for the slotwise
resolver.

The resolver treats request-type classification as an external capability:
the real platform SDK knows how to label an incoming envelope, and the core
only needs the label. Decoupling it here keeps the resolution logic testable
without any SDK dependency.
*/
package ports
