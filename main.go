package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"smalltalk/app/client/jokes"
	"smalltalk/app/client/quotes"
	"smalltalk/app/client/telegram"
	"smalltalk/app/client/weather"
	"smalltalk/app/config"
	"smalltalk/app/service/conversation"
	"smalltalk/app/service/engine"
	"smalltalk/app/service/memory"
	"smalltalk/app/service/queue"
	"smalltalk/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, telegram.NewClient)
	do.Provide(di, weather.NewClient)
	do.Provide(di, jokes.NewClient)
	do.Provide(di, quotes.NewClient)
	do.Provide(di, memory.New)
	do.Provide(di, conversation.New)
	do.Provide(di, queue.New)
	do.Provide(di, engine.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go do.MustInvoke[*engine.Service](di).Run(appCtx)

	<-appCtx.Done()
}
