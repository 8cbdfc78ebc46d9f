// Command voxia-app serves the clinic API and runs its background jobs.
package main

import (
	"github.com/br70-Solution/voxia-app/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize voxia-app")
	}

	// Blocks until SIGINT or SIGTERM.
	app.Run()
}
