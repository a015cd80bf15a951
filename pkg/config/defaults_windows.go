//go:build windows

package config

// platformDefaults returns the probe patterns and installer artifact for
// Windows. Patterns may reference environment variables, expanded by the
// prober before globbing.
func platformDefaults() map[string]interface{} {
	return map[string]interface{}{
		"probe.patterns": []string{
			`C:\Program Files\FreeCAD*\bin\FreeCAD.exe`,
			`C:\Program Files (x86)\FreeCAD*\bin\FreeCAD.exe`,
			`$LOCALAPPDATA\Programs\FreeCAD*\bin\FreeCAD.exe`,
		},
		"installer.url": "https://github.com/FreeCAD/FreeCAD/releases/download/1.0.2/FreeCAD_1.0.2-conda-Windows-x86_64-installer-1.exe",
	}
}
