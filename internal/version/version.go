// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Tangent-plane finder view, YAML config, JSON snapshot export
// 0.2.0 - TUI dashboard with orrery view, nutation report, watch mode
// 0.1.0 - Initial release: planetary series, nutation series, headless table
