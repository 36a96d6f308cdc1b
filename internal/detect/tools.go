package detect

import (
	"os/exec"
	"strings"
)

// CheckNode returns true if a node binary is on PATH.
func CheckNode() bool {
	_, err := exec.LookPath("node")
	return err == nil
}

// NodeVersion returns the installed node version, or "unknown".
func NodeVersion() string {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

// CheckPackageManager returns true if the binary for pm is on PATH.
func CheckPackageManager(pm PackageManager) bool {
	_, err := exec.LookPath(string(pm))
	return err == nil
}

// InstallCommand returns the install invocation for pm, shown to the
// operator after migration so the new dependencies get installed.
func InstallCommand(pm PackageManager) string {
	switch pm {
	case Yarn:
		return "yarn"
	case PNPM:
		return "pnpm install"
	case Bun:
		return "bun install"
	default:
		return "npm install"
	}
}

// RunCommand returns the script invocation for pm, e.g. "pnpm dev".
func RunCommand(pm PackageManager, script string) string {
	switch pm {
	case Yarn:
		return "yarn " + script
	case PNPM:
		return "pnpm " + script
	case Bun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}
