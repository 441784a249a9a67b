// termothello is a terminal application to play Othello on one keyboard.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	root := Root()
	root.SetArgs(os.Args[1:])
	err := root.Execute()
	if cerr := closeLog(); cerr != nil {
		logrus.WithError(cerr).Warn("could not close log file")
	}
	if err != nil {
		logrus.Fatal(err)
	}
}
