package main

import (
	"context"
	"time"

	"github.com/screenbeam/screenbeam/pkg/config"
	"github.com/screenbeam/screenbeam/pkg/logger"
	"github.com/screenbeam/screenbeam/pkg/monitoring"
	"github.com/screenbeam/screenbeam/pkg/os"
	"github.com/screenbeam/screenbeam/pkg/relay"
	"github.com/screenbeam/screenbeam/pkg/server"
)

var Version = "?"

func main() {
	conf := config.NewConfig()
	log := logger.NewConsole(conf.Relay.Debug, "relay", false)

	log.Info().Msgf("version %s", Version)
	if log.GetLevel() < logger.InfoLevel {
		log.Debug().Msgf("config: %+v", conf)
	}

	rly, err := relay.New(conf, log)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't init the relay")
	}

	services := server.Services{}
	services.Add(rly).
		AddIf(conf.Monitoring.IsEnabled(), monitoring.New(conf.Monitoring, "relay", log))
	services.Start()

	<-os.ExpectTermination()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	services.Stop(ctx, log)
}
