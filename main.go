package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/peterh/liner"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unoparty/config"
	"github.com/ratel-online/unoparty/network"
	"github.com/ratel-online/unoparty/service"
	"github.com/ratel-online/unoparty/uno/reaction"
	"github.com/ratel-online/unoparty/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	path := flag.String("config", "", "path to a JSON config file")
	mode := flag.String("mode", "", "console, tcp or ws")
	seed := flag.Int64("seed", 0, "shuffle seed, 0 seeds from the clock")
	flag.Parse()

	conf, err := config.Load(*path)
	if err != nil {
		log.Error(err)
		return
	}
	if *mode != "" {
		conf.Mode = *mode
	}
	if *seed != 0 {
		conf.Seed = *seed
	}
	if err = conf.Validate(); err != nil {
		log.Error(err)
		return
	}
	if conf.Seed == 0 {
		conf.Seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var line *liner.State
	if conf.Mode == config.ModeConsole {
		line = liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)
		if conf.HumanName, err = ui.PromptName(line, conf.HumanName); err != nil {
			return
		}
	}

	rng := rand.New(rand.NewSource(conf.Seed))
	table, err := service.NewTable(service.Options{
		HumanName: conf.HumanName,
		Seats:     conf.Seats,
		HandSize:  conf.HandSize,
		Rand:      rng,
		Tuning:    conf.Tuning,
		BotDelay:  conf.BotDelay(),
		Reactions: reaction.NewPort(newGenerator(ctx, conf, rng), conf.ReactionTimeout()),
	})
	if err != nil {
		log.Error(err)
		return
	}
	if err = table.Start(); err != nil {
		log.Error(err)
		return
	}
	async.Async(func() {
		if err := table.Run(ctx); err != nil && err != context.Canceled {
			log.Error(err)
		}
	})

	switch conf.Mode {
	case config.ModeTCP:
		log.Error(network.NewTcpServer(conf.TCPAddr, table).Serve())
	case config.ModeWS:
		log.Error(network.NewWebsocketServer(conf.WSAddr, table).Serve())
	default:
		if err = ui.NewConsole(table, nil).Run(ctx, line); err != nil {
			log.Error(err)
		}
	}
}

// newGenerator prefers Gemini and falls back to canned lines without a key.
func newGenerator(ctx context.Context, conf config.Config, rng *rand.Rand) reaction.Generator {
	if conf.Gemini.APIKey == "" {
		return reaction.NewCannedGenerator(rand.New(rand.NewSource(rng.Int63())))
	}
	generator, err := reaction.NewGeminiGenerator(ctx, conf.Gemini.APIKey, conf.Gemini.Model)
	if err != nil {
		log.Errorf("gemini unavailable, using canned reactions: %v\n", err)
		return reaction.NewCannedGenerator(rand.New(rand.NewSource(rng.Int63())))
	}
	return generator
}
