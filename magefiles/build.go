//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the easel binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/easel", "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Packages that build without cgo or a display. platform/desktop and
// renderer/ebitengine link ebiten and are left out.
var headlessPackages = []string{
	"./engine",
	"./engine/containers",
	"./engine/core",
	"./engine/math",
	"./engine/objects",
	"./engine/platform",
	"./engine/renderer",
	"./engine/renderer/raster",
	"./testbed",
}

// Runs every test except the ones that need a display.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs(append([]string{"test"}, headlessPackages...)...), withStream()); err != nil {
		return err
	}
	return nil
}
