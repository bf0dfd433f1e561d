// Package models contains the data structures used throughout gowol.
package models

// Config holds the contents of a gowol config file.
type Config struct {
	Defaults Defaults
	Hosts    map[string]HostConfig
}

// Defaults apply to every host that leaves a field unset.
type Defaults struct {
	BroadcastIP string
}

// HostConfig describes one named machine that can be woken.
type HostConfig struct {
	MACAddress  string
	BroadcastIP string
}
