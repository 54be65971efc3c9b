package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the pipeline tools
	Version = "1.0.0"

	// DataFormatVersion is the version of the cleaned data format
	DataFormatVersion = "wave2-v1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version           string `json:"version"`
	DataFormatVersion string `json:"data_format_version"`
	GoVersion         string `json:"go_version"`
	Platform          string `json:"platform"`
}

// GetVersionInfo returns the complete version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:           Version,
		DataFormatVersion: DataFormatVersion,
		GoVersion:         runtime.Version(),
		Platform:          fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
