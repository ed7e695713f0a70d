// Package link defines the boundary between the flight controller and its
// ground link.
//
// Inbound requests from the ground are Events, everything else exchanged
// over the link is a Message. Messages are plain structs carrying proto3
// struct tags so package wire can serialize them with the protobuf runtime.
//
// Producer of Events: ground station
// Consumer of Events: comm.Manager
package link
