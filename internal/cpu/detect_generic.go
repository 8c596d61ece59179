//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no accelerated features on other architectures.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
