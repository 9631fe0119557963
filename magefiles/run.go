//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the testbed in a window.
func (Run) App() error {
	fmt.Println("Run easel...")
	if _, err := executeCmd("go", withArgs("run", ".", "--config", "easel.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders the testbed off screen and writes the last frame to snapshot.png.
func (Run) Headless() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run easel headless...")
	if _, err := executeCmd("bin/easel", withArgs("--config", "easel.toml", "--headless", "--frames", "120", "--snapshot", "snapshot.png"), withStream()); err != nil {
		return err
	}
	return nil
}
