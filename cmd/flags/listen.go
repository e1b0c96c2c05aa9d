package flags

import "strings"

// ListenAddress accepts either host:port or the bare port the PORT
// environment variable traditionally carries.
func ListenAddress(value string) string {
	if value == "" || strings.Contains(value, ":") {
		return value
	}
	return ":" + value
}
