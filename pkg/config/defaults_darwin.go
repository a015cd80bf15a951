//go:build darwin

package config

import "runtime"

func platformDefaults() map[string]interface{} {
	arch := "arm64"
	if runtime.GOARCH == "amd64" {
		arch = "x86_64"
	}
	return map[string]interface{}{
		"probe.patterns": []string{
			"/Applications/FreeCAD.app/Contents/MacOS/FreeCAD",
			"$HOME/Applications/FreeCAD.app/Contents/MacOS/FreeCAD",
		},
		"installer.url": "https://github.com/FreeCAD/FreeCAD/releases/download/1.0.2/FreeCAD_1.0.2-conda-macOS-" + arch + ".dmg",
	}
}
