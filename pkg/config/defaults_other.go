//go:build !windows && !darwin

package config

func platformDefaults() map[string]interface{} {
	return map[string]interface{}{
		"probe.patterns": []string{
			"/usr/bin/freecad",
			"/usr/bin/FreeCAD",
			"/usr/local/bin/freecad",
			"/snap/bin/freecad",
			"/var/lib/flatpak/exports/bin/org.freecad.FreeCAD",
			"$HOME/Applications/FreeCAD*.AppImage",
		},
		"installer.url": "https://github.com/FreeCAD/FreeCAD/releases/download/1.0.2/FreeCAD_1.0.2-conda-Linux-x86_64-py311.AppImage",
	}
}
