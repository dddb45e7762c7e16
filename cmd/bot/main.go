package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/togarashi-bot/internal/authority"
	"github.com/KirkDiggler/togarashi-bot/internal/config"
	"github.com/KirkDiggler/togarashi-bot/internal/events"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/KirkDiggler/togarashi-bot/internal/handlers/discord"
	tgotel "github.com/KirkDiggler/togarashi-bot/internal/platform/otel"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/formulas"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/selections"
	"github.com/KirkDiggler/togarashi-bot/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
}

func run() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}
	log.Printf("Authority mode: %s", cfg.Combat.Authority)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	shutdownTracing, err := tgotel.Setup(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("Error flushing traces: %v", err)
		}
	}()

	// Rules: the formula file replaces the built-in defaults
	defaultFormulas := formula.DefaultSet()
	if cfg.Combat.FormulasFile != "" {
		defaultFormulas, err = formula.LoadFile(cfg.Combat.FormulasFile)
		if err != nil {
			return err
		}
		log.Printf("Loaded formulas from %s", cfg.Combat.FormulasFile)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	providerConfig := &services.ProviderConfig{
		PollInterval:    cfg.Combat.PollInterval,
		DefaultFormulas: defaultFormulas,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			} else {
				log.Println("Closed Redis connection")
			}
		}()

		providerConfig.ActorRepository = actors.NewRedis(redisClient)
		providerConfig.SelectionRepository = selections.NewRedis(redisClient)
		providerConfig.FormulaRepository = formulas.NewRedisRepository(&formulas.RedisRepoConfig{
			Client:   redisClient,
			Defaults: defaultFormulas,
		})
		log.Println("Using Redis for persistence")
	} else {
		providerConfig.ActorRepository = actors.NewInMemoryRepository()
		providerConfig.FormulaRepository = formulas.NewInMemoryRepository(defaultFormulas)
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	if cfg.Combat.ActorsFile != "" {
		roster, err := actors.LoadRoster(cfg.Combat.ActorsFile)
		if err != nil {
			return err
		}
		rules, err := providerConfig.FormulaRepository.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load formulas: %w", err)
		}
		added, err := actors.Seed(ctx, providerConfig.ActorRepository, roster, rules, formula.NewEngine())
		if err != nil {
			return fmt.Errorf("failed to seed actors: %w", err)
		}
		log.Printf("Seeded %d of %d actors from %s", added, len(roster), cfg.Combat.ActorsFile)
	}

	bus := events.NewBus()
	providerConfig.EventBus = bus
	providerConfig.Presenter = discord.NewPresenter(dg)
	providerConfig.Notifier = discord.NewNotifier(dg)

	group, groupCtx := errgroup.WithContext(ctx)

	switch cfg.Combat.Authority {
	case config.AuthorityLocal:
		executor := authority.NewExecutor(&authority.ExecutorConfig{
			Actors:   providerConfig.ActorRepository,
			Formulas: providerConfig.FormulaRepository,
			EventBus: bus,
		})
		providerConfig.Dispatcher = authority.NewLocalDispatcher(executor)
	case config.AuthorityHost:
		executor := authority.NewExecutor(&authority.ExecutorConfig{
			Actors:   providerConfig.ActorRepository,
			Formulas: providerConfig.FormulaRepository,
			EventBus: bus,
		})
		subscriber := authority.NewSubscriber(&authority.SubscriberConfig{
			Client:  redisClient,
			Channel: cfg.Redis.Channel,
			Handler: executor,
		})
		group.Go(func() error {
			return subscriber.Run(groupCtx)
		})
		providerConfig.Dispatcher = authority.NewRedisDispatcher(&authority.RedisDispatcherConfig{
			Client:  redisClient,
			Channel: cfg.Redis.Channel,
		})
	case config.AuthorityRemote:
		providerConfig.Dispatcher = authority.NewRedisDispatcher(&authority.RedisDispatcherConfig{
			Client:  redisClient,
			Channel: cfg.Redis.Channel,
		})
		if cfg.Discord.CombatLogChannelID != "" {
			log.Println("Combat log is posted by the authority host, not this bot")
		}
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	combatLog := discord.NewCombatLog(dg, cfg.Discord.CombatLogChannelID)
	combatLog.Subscribe(bus)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Session:         dg,
		AppID:           cfg.Discord.AppID,
		ActionTimeout:   cfg.Combat.PromptTimeout,
		GMRoleID:        cfg.Discord.GMRoleID,
	})

	// Register interaction handler
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(cfg.Discord.GuildID); err != nil {
		return err
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	group.Go(func() error {
		<-groupCtx.Done()
		fmt.Println("Shutting down...")
		handler.Close()
		combatLog.Unsubscribe(bus)
		return nil
	})

	return group.Wait()
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	log.Println("Connecting to Redis")

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("Successfully connected to Redis")
	return client, nil
}
