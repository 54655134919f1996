package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/sparring/internal/sparring/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := sparring(); err != nil {
		logrus.Fatal(err)
	}
}

func sparring() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}
