package platform

import "strings"

// systemName renders a GOOS value the way uname's sysname reads ("Linux", "Darwin").
func systemName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "Darwin"
	case "":
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
