// Command checkin is the offline-first client. It submits one check-in when
// the endpoint is reachable and queues it locally when it is not; -sync
// drains the queue and -queue shows how many entries are waiting.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/recenterhq/driftcheck/internal/config"
	"github.com/recenterhq/driftcheck/internal/db"
	"github.com/recenterhq/driftcheck/internal/queue"
	"github.com/recenterhq/driftcheck/internal/store"
	"github.com/recenterhq/driftcheck/pkg/checkin"
	"github.com/recenterhq/driftcheck/pkg/models"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to config YAML file")
		token      = flag.String("token", os.Getenv("DRIFT_TOKEN"), "Bearer token for the endpoint")
		note       = flag.String("note", "", "Optional reflection note")
		syncOnly   = flag.Bool("sync", false, "Drain the offline queue and exit")
		queueOnly  = flag.Bool("queue", false, "Print the number of queued check-ins and exit")
		offline    = flag.Bool("offline", false, "Skip the connectivity probe and queue directly")

		energy         = flag.Int("energy", 0, "Energy answer (1-5)")
		sleep          = flag.Int("sleep", 0, "Sleep answer (1-5)")
		structure      = flag.Int("structure", 0, "Structure answer (1-5)")
		initiation     = flag.Int("initiation", 0, "Initiation answer (1-5)")
		engagement     = flag.Int("engagement", 0, "Engagement answer (1-5)")
		sustainability = flag.Int("sustainability", 0, "Sustainability answer (1-5)")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	checkin.SetLogger(logger)

	ctx := context.Background()

	database, err := db.New(ctx, cfg.Client.QueuePath)
	if err != nil {
		log.Fatalf("Failed to open local queue db: %v", err)
	}
	defer database.Close()

	queueStore, err := store.Open(ctx, database)
	if err != nil {
		log.Fatalf("Failed to open local queue store: %v", err)
	}

	client, err := checkin.NewClient(checkin.ClientConfig{
		BaseURL: cfg.Client.Endpoint,
		Timeout: cfg.Client.Timeout,
		Token:   *token,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	mgr := queue.NewManager(queueStore, client, logger)

	switch {
	case *queueOnly:
		fmt.Printf("%d check-in(s) waiting to sync\n", mgr.Count(ctx))

	case *syncOnly:
		res, err := mgr.Process(ctx)
		if err != nil {
			log.Fatalf("Sync failed: %v", err)
		}
		fmt.Printf("synced %d, failed %d, %d still queued\n", res.Synced, res.Failed, mgr.Count(ctx))

	default:
		answers := models.Answers{
			Energy:         *energy,
			Sleep:          *sleep,
			Structure:      *structure,
			Initiation:     *initiation,
			Engagement:     *engagement,
			Sustainability: *sustainability,
		}
		if err := answers.Validate(); err != nil {
			log.Fatalf("Invalid answers: %v", err)
		}

		online := !*offline && client.Health(ctx) == nil

		router := checkin.NewRouter(client, mgr, logger)
		out, err := router.Submit(ctx, answers, *note, online)
		if err != nil {
			log.Fatalf("Submit failed: %v", err)
		}

		if out.Queued {
			fmt.Printf("offline: check-in queued as %s (%d waiting)\n", out.QueueID, mgr.Count(ctx))
			return
		}
		b, _ := json.MarshalIndent(out.Result, "", "  ")
		fmt.Println(string(b))
	}
}
